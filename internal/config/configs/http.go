package configs

// HTTP configures the ads API server. Only the listen port is tunable;
// the server binds all interfaces, which is what the container setup
// expects.
type HTTP struct {
	// Port is the TCP port the API listens on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
