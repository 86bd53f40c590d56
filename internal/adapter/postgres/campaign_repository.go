package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Creative and audience targeting are stored as JSONB documents; every
// query is scoped by user_id so foreign campaigns look absent.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
        id, user_id, name, description, budget, spent,
        target_location, target_radius, creative, target_audience,
        status, impressions, reach, start_date, end_date,
        created_at, updated_at`

// Create inserts a new campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	creative, audience, err := marshalCampaignDocs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaigns (`+campaignColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		c.ID, c.UserID, c.Name, c.Description, c.Budget, c.Spent,
		c.TargetLocation, c.TargetRadius, creative, audience,
		c.Status, c.Impressions, c.Reach, c.StartDate, c.EndDate,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

// GetByID returns the campaign when it exists and is owned by userID.
func (r *CampaignRepository) GetByID(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByUser returns the user's campaigns, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE user_id = $1
        ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Update rewrites every mutable field of an owned campaign.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	creative, audience, err := marshalCampaignDocs(c)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET
            name = $3, description = $4, budget = $5, spent = $6,
            target_location = $7, target_radius = $8,
            creative = $9, target_audience = $10,
            status = $11, impressions = $12, reach = $13,
            start_date = $14, end_date = $15, updated_at = $16
        WHERE id = $1 AND user_id = $2`,
		c.ID, c.UserID,
		c.Name, c.Description, c.Budget, c.Spent,
		c.TargetLocation, c.TargetRadius, creative, audience,
		c.Status, c.Impressions, c.Reach,
		c.StartDate, c.EndDate, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// UpdateStatus changes only the status (and optionally the start date) of
// an owned campaign.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id, userID string, status domain.CampaignStatus, startDate *time.Time) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET
            status = $3,
            start_date = COALESCE($4, start_date),
            updated_at = now()
        WHERE id = $1 AND user_id = $2`,
		id, userID, status, startDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes an owned campaign. Bookings and payments referencing it
// are removed by ON DELETE CASCADE.
func (r *CampaignRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func marshalCampaignDocs(c *domain.Campaign) (creative, audience []byte, err error) {
	if creative, err = json.Marshal(c.Creative); err != nil {
		return nil, nil, fmt.Errorf("marshal creative: %w", err)
	}
	if audience, err = json.Marshal(c.TargetAudience); err != nil {
		return nil, nil, fmt.Errorf("marshal target audience: %w", err)
	}
	return creative, audience, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		creativeRaw []byte
		audienceRaw []byte
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Description, &c.Budget, &c.Spent,
		&c.TargetLocation, &c.TargetRadius, &creativeRaw, &audienceRaw,
		&c.Status, &c.Impressions, &c.Reach, &c.StartDate, &c.EndDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(creativeRaw) > 0 {
		if err = json.Unmarshal(creativeRaw, &c.Creative); err != nil {
			return nil, fmt.Errorf("unmarshal creative: %w", err)
		}
	}
	if len(audienceRaw) > 0 {
		if err = json.Unmarshal(audienceRaw, &c.TargetAudience); err != nil {
			return nil, fmt.Errorf("unmarshal target audience: %w", err)
		}
	}
	return &c, nil
}
