package port

import (
	"context"
	"errors"
	"time"

	"canopy-ads/internal/core/domain"
)

// ErrNotFound is returned when an entity is absent or not owned by the
// requesting user. The two cases are deliberately indistinguishable so
// ownership is never leaked.
var ErrNotFound = errors.New("not found")

// ScreenRepository is the outbound port for screen persistence.
type ScreenRepository interface {
	// ListByStatus returns screens with the given status, each carrying
	// the bookings whose end date falls at or after bookedThrough.
	ListByStatus(ctx context.Context, status domain.ScreenStatus, bookedThrough time.Time) ([]domain.Screen, error)
	// CreateBooking assigns a campaign to a screen for a half-open date
	// interval. The capacity rule is advisory; this write is not
	// transactionally guarded against concurrent over-booking.
	CreateBooking(ctx context.Context, b *domain.Booking) error
}

// CampaignRepository is the outbound port for campaign persistence. Every
// read and write is scoped by the owning user id; a campaign belonging to
// another user behaves as if it does not exist.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id, userID string) (*domain.Campaign, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	// UpdateStatus transitions a campaign's status without touching other
	// fields. When startDate is non-nil it is set as well (payment
	// activation stamps the start of the run).
	UpdateStatus(ctx context.Context, id, userID string, status domain.CampaignStatus, startDate *time.Time) error
	Delete(ctx context.Context, id, userID string) error
}

// PaymentRepository stores payment records raised for campaigns.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	// GetByProviderID looks a payment up by the collaborator's opaque
	// handle; used by the webhook path, which has no user scope.
	GetByProviderID(ctx context.Context, providerID string) (*domain.Payment, error)
	SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}
