package commands

import (
	"context"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingCommands interface {
	CancelBooking(ctx context.Context, reference string) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, reference string) error
}

type bookingCommandsImpl struct {
	bookings BookingWriter
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingWriter, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{bookings: bookings, clock: clk}
}

// CancelBooking flips the status; refunds are handled by the back office
// outside this system.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, reference string) (*booking.Booking, error) {
	ref, err := booking.ParseReference(reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	b, err := c.bookings.FindByReference(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.Cancel(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := c.bookings.Save(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, reference string) error {
	ref, err := booking.ParseReference(reference)
	if err != nil {
		return ErrBookingNotFound
	}

	if err := c.bookings.Delete(ctx, ref); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
