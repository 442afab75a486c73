package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"parkcompare/internal/domain/booking"
	"parkcompare/internal/domain/pricing"
	reqdto "parkcompare/internal/handler/dto/request"
	"parkcompare/internal/infra/events"
	"parkcompare/internal/infra/payment"
	"parkcompare/internal/pkg/clock"
	"parkcompare/internal/pkg/errs"
	"parkcompare/internal/usecase/queries"
)

var (
	ErrUnpriceableCompany      = errs.New("company cannot be priced")
	ErrInvalidBookingInput     = errs.New("invalid booking input")
	ErrPaymentNotConfirmed     = errs.New("payment was not confirmed")
	ErrPaymentProviderFailed   = errs.New("payment provider failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PaymentIntentResult struct {
	Intent *payment.Intent
	Quote  *queries.Quote
}

type CheckoutCommands interface {
	CreatePaymentIntent(ctx context.Context, req reqdto.QuoteRequest) (*PaymentIntentResult, error)
	FinalizeBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.Booking, error)
}

type checkoutCommandsImpl struct {
	quotes    queries.QuoteQueries
	payments  PaymentProvider
	bookings  BookingWriter
	factory   *booking.Factory
	publisher EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCheckoutCommands(
	quotes queries.QuoteQueries,
	payments PaymentProvider,
	bookings BookingWriter,
	factory *booking.Factory,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		quotes:    quotes,
		payments:  payments,
		bookings:  bookings,
		factory:   factory,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// CreatePaymentIntent recomputes the quote server-side and opens a Stripe
// intent for the resulting amount in pence. The client never dictates the
// charge.
func (c *checkoutCommandsImpl) CreatePaymentIntent(ctx context.Context, req reqdto.QuoteRequest) (*PaymentIntentResult, error) {
	params, err := req.ToParams()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	quote, err := c.quotes.QuoteCompany(ctx, req.CompanyID, params)
	if err != nil {
		if errors.Is(err, queries.ErrUnpriceable) {
			return nil, ErrUnpriceableCompany
		}
		return nil, err
	}

	intent, err := c.payments.CreateIntent(ctx, pricing.Pence(quote.FinalTotal), map[string]string{
		"companyId":    quote.CompanyID.String(),
		"parkingName":  quote.ParkingName,
		"airport":      quote.Airport,
		"durationDays": strconv.Itoa(quote.DurationDays),
		"vehicleCount": strconv.Itoa(quote.VehicleCount),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProviderFailed)
	}

	return &PaymentIntentResult{Intent: intent, Quote: quote}, nil
}

// FinalizeBooking turns a succeeded payment into a stored booking. The
// quote is recomputed and checked against the captured amount, so a stale
// or tampered checkout page cannot buy parking below price.
func (c *checkoutCommandsImpl) FinalizeBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*booking.Booking, error) {
	params, err := req.ToQuoteParams()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	quote, err := c.quotes.QuoteCompany(ctx, req.CompanyID, params)
	if err != nil {
		if errors.Is(err, queries.ErrUnpriceable) {
			return nil, ErrUnpriceableCompany
		}
		return nil, err
	}

	intent, err := c.payments.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProviderFailed)
	}
	if !intent.Succeeded() {
		return nil, ErrPaymentNotConfirmed
	}
	if intent.Amount != pricing.Pence(quote.FinalTotal) {
		return nil, ErrPaymentNotConfirmed
	}

	vehicles, err := booking.NewVehicles(req.Vehicles)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}
	stay, err := req.ToStay()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	b, err := c.factory.CreateBooking(booking.NewBookingParams{
		CompanyID:    req.CompanyID,
		ParkingName:  quote.ParkingName,
		Airport:      quote.Airport,
		Customer:     req.Customer.ToDomain(),
		Vehicles:     vehicles,
		Stay:         stay,
		DurationDays: quote.DurationDays,
		Price: booking.PriceBreakdown{
			OriginalTotal:  quote.OriginalTotal,
			DiscountAmount: quote.DiscountAmount,
			FinalTotal:     quote.FinalTotal,
			PromoCode:      quote.PromoCode,
		},
		PaymentIntentID: intent.ID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookings.Save(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The booking is committed; a publish failure only delays the email.
	if err := c.publisher.PublishBookingConfirmed(ctx, c.confirmationEvent(b)); err != nil {
		c.logger.Error("failed to publish booking confirmation",
			slog.String("reference", b.Reference.String()),
			slog.String("error", err.Error()),
		)
	}

	return b, nil
}

func (c *checkoutCommandsImpl) confirmationEvent(b *booking.Booking) events.BookingConfirmed {
	return events.BookingConfirmed{
		Reference:      b.Reference.String(),
		CustomerName:   b.Customer.FullName(),
		CustomerEmail:  b.Customer.Email,
		ParkingName:    b.ParkingName,
		Airport:        b.Airport,
		StartDate:      b.Stay.StartDate,
		EndDate:        b.Stay.EndDate,
		DurationDays:   b.DurationDays,
		VehicleCount:   len(b.Vehicles),
		OriginalTotal:  b.Price.OriginalTotal,
		DiscountAmount: b.Price.DiscountAmount,
		FinalTotal:     b.Price.FinalTotal,
		PromoCode:      b.Price.PromoCode,
		ConfirmedAt:    c.clock.Now(),
	}
}
