package bracket

import (
	"time"
)

// Dates are kept as YYYY-MM-DD strings, the same shape clients send them in.
const DateLayout = "2006-01-02"

type Tournament struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Slots        int       `db:"slots" json:"slots"`
	StartDate    string    `db:"start_date" json:"start_date"`
	EndDate      string    `db:"end_date" json:"end_date"`
	WinningPrize string    `db:"winning_prize" json:"winning_prize"`
	Details      string    `db:"details" json:"details"`
	Image        *string   `db:"image" json:"image"`
	CreatorID    *int64    `db:"creator_id" json:"creator"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
