package payment

import "time"

type Product struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	PriceCents int64  `db:"price_cents" json:"price_cents"`
	Currency   string `db:"currency" json:"currency"`
	AssetURL   string `db:"asset_url" json:"-"`
}

// History is one purchase attempt. Paid flips once the provider confirms the checkout.
type History struct {
	ID                int64     `db:"id" json:"id"`
	PlayerID          *int64    `db:"player_id" json:"player"`
	Email             string    `db:"email" json:"email"`
	ProductID         *int64    `db:"product_id" json:"product"`
	CheckoutSessionID string    `db:"checkout_session_id" json:"checkout_session_id"`
	Paid              bool      `db:"payment_status" json:"payment_status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
