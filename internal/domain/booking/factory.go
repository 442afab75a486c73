package booking

import (
	"time"

	"github.com/google/uuid"

	"parkcompare/internal/pkg/clock"
)

// Factory assembles finalized bookings. The clock is injected so the
// timestamps on a booking are as deterministic as the quote maths.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

type NewBookingParams struct {
	CompanyID       uuid.UUID
	ParkingName     string
	Airport         string
	Customer        CustomerDetails
	Vehicles        []VehicleEntry
	Stay            Stay
	DurationDays    int
	Price           PriceBreakdown
	PaymentIntentID string
}

func (f *Factory) CreateBooking(p NewBookingParams) (*Booking, error) {
	if p.Stay.EndDate.Before(p.Stay.StartDate) {
		return nil, ErrInvalidDates
	}
	if len(p.Vehicles) == 0 {
		return nil, ErrNoVehicles
	}
	if len(p.Vehicles) > maxVehicles {
		return nil, ErrTooManyVehicles
	}

	now := f.Clock.Now().UTC().Truncate(time.Second)
	return &Booking{
		Reference:       NewReference(),
		CompanyID:       p.CompanyID,
		ParkingName:     p.ParkingName,
		Airport:         p.Airport,
		Customer:        p.Customer,
		Vehicles:        p.Vehicles,
		Stay:            p.Stay,
		DurationDays:    p.DurationDays,
		Price:           p.Price,
		PaymentIntentID: p.PaymentIntentID,
		Status:          StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
