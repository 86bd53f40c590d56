package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// demoUserID is the identity the fronting gateway assigns to the demo
// account.
const demoUserID = "demo-user"

type seedScreen struct {
	name      string
	location  string
	latitude  float64
	longitude float64
}

// seedScreens is the demo central-London inventory.
var seedScreens = []seedScreen{
	{"Oxford Street Screen 1", "Oxford Street, London", 51.5154, -0.1419},
	{"Regent Street Screen 2", "Regent Street, London", 51.5094, -0.1406},
	{"Covent Garden Screen 3", "Covent Garden, London", 51.5118, -0.1234},
	{"Leicester Square Screen 4", "Leicester Square, London", 51.5103, -0.1337},
	{"Piccadilly Circus Screen 5", "Piccadilly Circus, London", 51.5098, -0.1342},
}

// Seed inserts the demo screen inventory plus a sample campaign booked
// onto the first three screens. It is idempotent: each table is only
// populated when empty.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM screens`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Info("screens already seeded", slog.Int("count", count))
		return seedDemoCampaign(ctx, pool, logger)
	}

	for _, s := range seedScreens {
		_, err := pool.Exec(ctx, `
            INSERT INTO screens (name, location, latitude, longitude, width, height, resolution, status)
            VALUES ($1, $2, $3, $4, 1920, 1080, '1920x1080', 'ACTIVE')`,
			s.name, s.location, s.latitude, s.longitude,
		)
		if err != nil {
			return err
		}
	}
	logger.Info("seeded demo screens", slog.Int("count", len(seedScreens)))

	return seedDemoCampaign(ctx, pool, logger)
}

func seedDemoCampaign(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var (
		id    = uuid.NewString()
		start = time.Now().UTC()
		end   = start.AddDate(0, 0, 7)
	)
	_, err := pool.Exec(ctx, `
        INSERT INTO campaigns (
            id, user_id, name, description, budget, spent,
            target_location, target_radius, creative, target_audience,
            status, start_date, end_date)
        VALUES ($1, $2, 'Summer Sale Campaign', 'Promoting summer menu items', 500, 0,
                'Central London', 2.5, $3, $4, 'ACTIVE', $5, $6)`,
		id, demoUserID,
		`{"headline":"Summer Special!","description":"Fresh seasonal dishes","cta":"Visit Now"}`,
		`{"ageRange":"25-45","interests":["food","dining"]}`,
		start, end,
	)
	if err != nil {
		return err
	}

	// book the first three screens for the campaign's run
	_, err = pool.Exec(ctx, `
        INSERT INTO bookings (screen_id, campaign_id, start_date, end_date)
        SELECT id, $1, $2, $3 FROM screens ORDER BY id LIMIT 3`,
		id, start, end,
	)
	if err != nil {
		return err
	}

	logger.Info("seeded demo campaign", slog.String("campaign_id", id))
	return nil
}
