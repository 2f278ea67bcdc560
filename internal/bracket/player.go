package bracket

import (
	"time"
)

type ContextKey string

const PlayerKey ContextKey = "player"

type Player struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      *string   `db:"email" json:"-"`
	Provider   *string   `db:"provider" json:"-"`
	ProviderID *string   `db:"provider_id" json:"-"`
	AvatarURL  *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
