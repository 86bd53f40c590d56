package migrations

import "embed"

// FS holds the schema migrations for the ads database. golang-migrate
// reads them through its iofs source driver at startup.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
