package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"canopy-ads/internal/core/domain"
)

// ScreenRepository implements port.ScreenRepository using pgxpool.
type ScreenRepository struct {
	pool *pgxpool.Pool
}

// NewScreenRepository returns a new repository instance.
func NewScreenRepository(pool *pgxpool.Pool) *ScreenRepository {
	return &ScreenRepository{pool: pool}
}

// ListByStatus returns screens with the given status and, per screen, the
// bookings still committed at or after bookedThrough. Bookings that have
// already ended are not loaded; they never count toward capacity.
func (r *ScreenRepository) ListByStatus(ctx context.Context, status domain.ScreenStatus, bookedThrough time.Time) ([]domain.Screen, error) {
	query := `
        SELECT
            s.id, s.name, s.location, s.latitude, s.longitude,
            s.width, s.height, s.resolution, s.status,
            s.created_at, s.updated_at,
            b.id, b.campaign_id, b.start_date, b.end_date
        FROM screens s
        LEFT JOIN bookings b
            ON b.screen_id = s.id AND b.end_date >= $2
        WHERE s.status = $1
        ORDER BY s.id, b.id`
	rows, err := r.pool.Query(ctx, query, status, bookedThrough)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		screens []domain.Screen
		index   = make(map[int64]int)
	)
	for rows.Next() {
		var (
			s         domain.Screen
			bookingID *int64
			campID    *string
			start     *time.Time
			end       *time.Time
		)
		err = rows.Scan(
			&s.ID, &s.Name, &s.Location, &s.Latitude, &s.Longitude,
			&s.Width, &s.Height, &s.Resolution, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
			&bookingID, &campID, &start, &end,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[s.ID]
		if !ok {
			i = len(screens)
			index[s.ID] = i
			screens = append(screens, s)
		}
		if bookingID != nil {
			screens[i].Bookings = append(screens[i].Bookings, domain.Booking{
				ID:         *bookingID,
				ScreenID:   s.ID,
				CampaignID: *campID,
				StartDate:  *start,
				EndDate:    *end,
			})
		}
	}
	return screens, rows.Err()
}

// CreateBooking assigns a campaign to a screen for [start, end). The
// capacity rule is advisory: eligibility filtering happens before this
// write, and concurrent over-booking is tolerated rather than guarded by
// a transaction.
func (r *ScreenRepository) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bookings (screen_id, campaign_id, start_date, end_date)
         VALUES ($1, $2, $3, $4) RETURNING id`,
		b.ScreenID, b.CampaignID, b.StartDate, b.EndDate,
	).Scan(&b.ID)
}
