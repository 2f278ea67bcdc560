package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/mail"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/payment"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/google/uuid"
)

type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error)
}

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type PaymentService struct {
	store    *store.ProductStore
	provider CheckoutProvider
	mailer   Mailer
	baseURL  string
}

// NewPaymentService wires checkout. A nil provider turns payments off, a nil mailer skips the
// confirmation mail.
func NewPaymentService(store *store.ProductStore, provider CheckoutProvider, mailer Mailer, baseURL string) *PaymentService {
	return &PaymentService{store: store, provider: provider, mailer: mailer, baseURL: baseURL}
}

type CheckoutInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *PaymentService) ListProducts(ctx context.Context) ([]payment.Product, error) {
	return s.store.ListProducts(ctx)
}

// GetProduct returns nil when there is no product with that ID.
func (s *PaymentService) GetProduct(ctx context.Context, id int64) (*payment.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return product, err
}

// Checkout opens a provider checkout for the product and records it as an unpaid purchase.
// A missing product yields nil.
func (s *PaymentService) Checkout(ctx context.Context, productID int64, input CheckoutInput) (*payment.CheckoutSession, error) {
	if s.provider == nil {
		return nil, ErrPaymentsDisabled
	}
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil || product == nil {
		return nil, err
	}

	var playerID *int64
	if id, ok := middleware.GetPlayerIDFromContext(ctx); ok {
		playerID = &id
	}

	reference := uuid.NewString()
	session, err := s.provider.CreateCheckout(ctx, payment.CheckoutRequest{
		Product:        *product,
		Email:          input.Email,
		Reference:      reference,
		SuccessURL:     s.baseURL + "/payments/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      s.baseURL + "/payments/cancel",
		IdempotencyKey: reference,
	})
	if err != nil {
		return nil, err
	}

	history := &payment.History{
		PlayerID:          playerID,
		Email:             input.Email,
		ProductID:         &product.ID,
		CheckoutSessionID: session.ID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.store.CreatePayment(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return session, nil
}

// HandleWebhook applies a provider event. Events for unknown sessions, unpaid checkouts and replays
// are accepted and ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.provider == nil {
		return ErrPaymentsDisabled
	}

	event, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if event.Completed == nil || !event.Completed.Paid {
		slog.Info("ignoring payment event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	sessionID := event.Completed.SessionID
	history, err := s.store.GetPaymentBySession(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			slog.Info("ignoring payment for unknown session", "session_id", sessionID)
			return nil
		}
		return fmt.Errorf("failed to get payment: %w", err)
	}

	changed, err := s.store.MarkPaid(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to mark payment as paid: %w", err)
	}
	if !changed {
		return nil
	}
	slog.Info("payment completed", "session_id", sessionID, "payment_id", history.ID)

	if s.mailer == nil || history.ProductID == nil {
		return nil
	}

	// The purchase is recorded at this point, a failed mail is only logged.
	if err := s.sendConfirmation(ctx, history, event.Completed.Email); err != nil {
		slog.Error("failed to send purchase confirmation", "session_id", sessionID, "error", err)
	}
	return nil
}

func (s *PaymentService) sendConfirmation(ctx context.Context, history *payment.History, email string) error {
	product, err := s.store.GetProduct(ctx, *history.ProductID)
	if err != nil {
		return fmt.Errorf("failed to get product %d: %w", *history.ProductID, err)
	}

	if email == "" {
		email = history.Email
	}
	msg, err := mail.PurchaseConfirmation(ctx, email, product.Name, product.AssetURL)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, msg)
}
