package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type CheckoutRequest struct {
	Product        Product
	Email          string
	Reference      string
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CompletedCheckout is the part of a finished checkout the app acts on.
type CompletedCheckout struct {
	SessionID string
	Email     string
	Paid      bool
}

type WebhookEvent struct {
	ID        string
	Type      string
	Completed *CompletedCheckout
}

type StripeProvider struct {
	client        *client.API
	webhookSecret string
}

// NewStripeProvider builds a client bound to secretKey. The package level stripe.Key is never set.
func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	return &StripeProvider{
		client:        client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     stripe.String(req.Email),
		ClientReferenceID: stripe.String(req.Reference),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Product.Currency),
					UnitAmount: stripe.Int64(req.Product.PriceCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Product.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	session, err := p.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// ParseWebhook verifies the signature header and decodes the event. Only completed checkouts
// carry a payload; every other event type comes back with Completed unset.
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	parsed := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return parsed, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}

	completed := &CompletedCheckout{
		SessionID: session.ID,
		Email:     session.CustomerEmail,
		Paid:      session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	if completed.Email == "" && session.CustomerDetails != nil {
		completed.Email = session.CustomerDetails.Email
	}
	parsed.Completed = completed
	return parsed, nil
}
