package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/payment"
	"github.com/jmoiron/sqlx"
)

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) ListProducts(ctx context.Context) ([]payment.Product, error) {
	products := []payment.Product{}
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM products ORDER BY id ASC")
	return products, err
}

func (s *ProductStore) GetProduct(ctx context.Context, id int64) (*payment.Product, error) {
	var product payment.Product
	if err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) CreatePayment(ctx context.Context, history *payment.History) error {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO payment_history (player_id, email, product_id, checkout_session_id, payment_status, created_at)
		VALUES (:player_id, :email, :product_id, :checkout_session_id, :payment_status, :created_at)`, history)
	if err != nil {
		return err
	}
	history.ID, err = res.LastInsertId()
	return err
}

func (s *ProductStore) GetPaymentBySession(ctx context.Context, sessionID string) (*payment.History, error) {
	var history payment.History
	if err := s.db.GetContext(ctx, &history, "SELECT * FROM payment_history WHERE checkout_session_id = ?", sessionID); err != nil {
		return nil, err
	}
	return &history, nil
}

// MarkPaid flips the payment to paid and reports whether this call did it, so a replayed
// provider event does not trigger a second confirmation.
func (s *ProductStore) MarkPaid(ctx context.Context, sessionID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE payment_history SET payment_status = 1 WHERE checkout_session_id = ? AND payment_status = 0", sessionID)
	if err != nil {
		return false, err
	}
	return affected(res)
}
