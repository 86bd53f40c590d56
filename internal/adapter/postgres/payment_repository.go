package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"canopy-ads/internal/core/domain"
	"canopy-ads/internal/core/port"
)

// PaymentRepository implements port.PaymentRepository using pgxpool.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a new repository instance.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create inserts a new payment row.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO payments (
            id, user_id, campaign_id, amount, currency,
            status, provider_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.CampaignID, p.Amount, p.Currency,
		p.Status, p.ProviderID, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByProviderID looks a payment up by the provider's intent id. The
// webhook path has no user scope, so this is the only unscoped read.
func (r *PaymentRepository) GetByProviderID(ctx context.Context, providerID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.pool.QueryRow(ctx, `
        SELECT id, user_id, campaign_id, amount, currency,
               status, provider_id, created_at, updated_at
        FROM payments
        WHERE provider_id = $1`,
		providerID,
	).Scan(
		&p.ID, &p.UserID, &p.CampaignID, &p.Amount, &p.Currency,
		&p.Status, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetStatus transitions a payment's status.
func (r *PaymentRepository) SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE payments SET status = $2, updated_at = now()
        WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
