package services

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// CheckoutItem describes the single line item of a rental payment
type CheckoutItem struct {
	CarID     string
	Brand     string
	Model     string
	Images    []string
	StartDate string
	EndDate   string
	Price     float64 // total rental price in PLN
}

// CheckoutService creates hosted checkout sessions at the payment provider
// and returns the URL the client should be redirected to.
type CheckoutService interface {
	CreateSession(ctx context.Context, item CheckoutItem) (string, error)
}

type stripeCheckout struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewStripeCheckout builds the Stripe-backed checkout service. Success and
// cancel targets are fixed pages of the SPA client.
func NewStripeCheckout(apiKey, clientURL string) CheckoutService {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &stripeCheckout{
		api:        api,
		successURL: clientURL + "/checkout-success",
		cancelURL:  clientURL + "/shop",
	}
}

// MinorUnitAmount converts a PLN amount to grosze, rounding up
func MinorUnitAmount(price float64) int64 {
	return int64(math.Ceil(price * 100))
}

// SessionParams assembles the provider request for one rental payment.
// Display name and description are client-facing and stay in Polish.
func SessionParams(item CheckoutItem, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "paypal", "blik"}),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("pln"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf(
							"Płatność za wypożyczenie pojazdu: %s %s",
							item.Brand, item.Model,
						)),
						Images: stripe.StringSlice(item.Images),
						Description: stripe.String(fmt.Sprintf(
							"Data rozpoczęcia okresu wypożyczenia: %s Data zakończenia okresu wypożyczenia: %s",
							item.StartDate, item.EndDate,
						)),
						Metadata: map[string]string{
							"id": item.CarID,
						},
					},
					UnitAmount: stripe.Int64(MinorUnitAmount(item.Price)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
}

// CreateSession requests a hosted checkout session. No idempotency key is
// attached, so a retried request creates a second provider session.
func (s *stripeCheckout) CreateSession(ctx context.Context, item CheckoutItem) (string, error) {
	params := SessionParams(item, s.successURL, s.cancelURL)
	params.Context = ctx
	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}
