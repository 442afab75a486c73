package commands

import (
	"context"
	"time"

	"parkcompare/internal/domain/adminuser"
	"parkcompare/internal/domain/booking"
	"parkcompare/internal/domain/catalog"
	"parkcompare/internal/domain/chat"
	"parkcompare/internal/domain/promo"
	"parkcompare/internal/infra/events"
	"parkcompare/internal/infra/payment"

	"github.com/google/uuid"
)

// Write-side ports. The read side lives in the queries package.

type CompanyWriter interface {
	Create(ctx context.Context, c *catalog.Company) error
	Update(ctx context.Context, c *catalog.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Company, error)
}

type LocationWriter interface {
	Create(ctx context.Context, l *catalog.Location) error
	Update(ctx context.Context, l *catalog.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PromoWriter interface {
	Create(ctx context.Context, p *promo.Promo) error
	Update(ctx context.Context, p *promo.Promo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingWriter interface {
	Save(ctx context.Context, b *booking.Booking) error
	FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error)
	Delete(ctx context.Context, ref booking.Reference) error
}

type CaseWriter interface {
	Save(ctx context.Context, c *chat.Case) error
}

type AdminUserReader interface {
	FindByEmail(ctx context.Context, email adminuser.Email) (*adminuser.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*adminuser.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// CacheInvalidator drops cached compare-page listings after admin edits.
type CacheInvalidator interface {
	InvalidateAirport(ctx context.Context, airport string) error
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountPence int64, metadata map[string]string) (*payment.Intent, error)
	GetIntent(ctx context.Context, id string) (*payment.Intent, error)
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event events.BookingConfirmed) error
}

// ReplyRephraser optionally rewords scripted chat replies. A nil
// implementation means the script goes out verbatim.
type ReplyRephraser interface {
	Rephrase(ctx context.Context, userMessage, scripted string) (string, error)
}
