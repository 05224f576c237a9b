package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway abstracts the card processor so tests can stub it and
// deployments without a Stripe key can run with it disabled.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, description string) (*Intent, error)
}

// Intent is the processor-side handle for a card payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// StripeGateway creates PaymentIntents against the Stripe API.
type StripeGateway struct {
	currency string
}

// NewStripeGateway sets the global Stripe key and returns a gateway
// charging in the given currency.
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	stripe.Key = secretKey
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	return &StripeGateway{currency: currency}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, description string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toMinorUnits(amount)),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// toMinorUnits converts a decimal amount to cents.
func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
