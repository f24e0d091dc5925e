// Package payment wraps the Stripe payment-intent flow used by the
// registration and donation submissions.
package payment

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/tulipkids/foundation-api/internal/config"
)

// ErrCardDeclined covers every rejection Stripe reports for the card
// itself, as opposed to a transport failure reaching Stripe.
var ErrCardDeclined = errors.New("card declined")

// Intent is the authorization handed back by the payment provider.
type Intent struct {
	ID           string
	ClientSecret string
}

// CardInput carries the client-collected payment method and billing
// details into the confirm call.
type CardInput struct {
	PaymentMethodID string
	Name            string
	Email           string
}

type StripeClient struct {
	api      *client.API
	currency string
}

func NewStripeClient(conf *config.StripeConfig) *StripeClient {
	api := &client.API{}
	api.Init(conf.SecretKey, nil)

	currency := conf.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	return &StripeClient{
		api:      api,
		currency: currency,
	}
}

// CreateIntent requests a payment authorization for the given amount in
// minor currency units.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, description string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
			Metadata: map[string]string{
				"purpose_code":        "P1101",
				"purpose_description": "Charitable donation to non-profit organization",
				"beneficiary_name":    "Tulip Kids Foundation",
				"beneficiary_country": "US",
			},
		},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		Description:        stripe.String(description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe paymentintent create -> %w", err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Confirm attaches the card and confirms the intent. A Stripe-reported
// failure maps to ErrCardDeclined; anything else is a transport fault.
func (c *StripeClient) Confirm(ctx context.Context, intentID string, card CardInput) (string, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethod: stripe.String(card.PaymentMethodID),
	}

	intent, err := c.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			return "", fmt.Errorf("%w: %v", ErrCardDeclined, stripeErr.Code)
		}

		return "", fmt.Errorf("stripe paymentintent confirm -> %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("%w: intent status %v", ErrCardDeclined, intent.Status)
	}

	return intent.ID, nil
}
