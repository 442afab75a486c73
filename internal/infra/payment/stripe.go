package payment

import (
	"context"

	"parkcompare/internal/pkg/config"
	"parkcompare/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Intent is what the checkout page needs to complete a card payment on
// the client side.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
}

// StripeProvider creates payment intents in minor units (pence). The
// client confirms the intent; the server only checks its status before
// finalizing a booking.
type StripeProvider struct {
	client   *client.API
	currency string
}

func NewStripeProvider(cfg config.StripeConfig) *StripeProvider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return &StripeProvider{client: sc, currency: cfg.Currency}
}

// CreateIntent opens a payment intent for the given amount in pence.
// Metadata carries the booking context so payments are traceable from the
// Stripe dashboard.
func (s *StripeProvider) CreateIntent(ctx context.Context, amountPence int64, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountPence),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// GetIntent fetches an intent so checkout can verify the payment
// succeeded before the booking is persisted.
func (s *StripeProvider) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.client.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch payment intent")
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// Succeeded reports whether an intent has actually captured the money.
func (i *Intent) Succeeded() bool {
	return i.Status == string(stripe.PaymentIntentStatusSucceeded)
}
