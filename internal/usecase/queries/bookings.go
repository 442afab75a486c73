package queries

import (
	"context"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/domain/chat"
	"parkcompare/internal/infra"
	"parkcompare/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrCaseNotFound    = errs.New("support case not found")
	ErrStoreReadFailed = errs.New("store read failed")
)

type BookingReader interface {
	FindByReference(ctx context.Context, ref booking.Reference) (*booking.Booking, error)
	FindAll(ctx context.Context) ([]*booking.Booking, error)
}

type CaseReader interface {
	FindByNumber(ctx context.Context, number string) (*chat.Case, error)
	FindAll(ctx context.Context) ([]*chat.Case, error)
}

type BookingQueries interface {
	ByReference(ctx context.Context, reference string) (*booking.Booking, error)
	All(ctx context.Context) ([]*booking.Booking, error)
	CaseByNumber(ctx context.Context, number string) (*chat.Case, error)
	AllCases(ctx context.Context) ([]*chat.Case, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
	cases    CaseReader
}

func NewBookingQueries(bookings BookingReader, cases CaseReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, cases: cases}
}

func (q *bookingQueriesImpl) ByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	ref, err := booking.ParseReference(reference)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	b, err := q.bookings.FindByReference(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreReadFailed)
	}
	return b, nil
}

func (q *bookingQueriesImpl) All(ctx context.Context) ([]*booking.Booking, error) {
	bookings, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreReadFailed)
	}
	return bookings, nil
}

func (q *bookingQueriesImpl) CaseByNumber(ctx context.Context, number string) (*chat.Case, error) {
	c, err := q.cases.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, errs.Mark(err, ErrStoreReadFailed)
	}
	return c, nil
}

func (q *bookingQueriesImpl) AllCases(ctx context.Context) ([]*chat.Case, error) {
	cases, err := q.cases.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreReadFailed)
	}
	return cases, nil
}
