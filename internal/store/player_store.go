package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type PlayerStore struct {
	db *sqlx.DB
}

const (
	getPlayerQuery           = "SELECT * FROM players WHERE id = ?"
	getPlayerByProviderQuery = `
        SELECT * FROM players
        WHERE provider = ?
        AND provider_id = ?
    `
	createPlayerQuery = `
		INSERT INTO players (name, email, provider, provider_id, avatar_url, created_at) VALUES
		(:name, :email, :provider, :provider_id, :avatar_url, :created_at)
	`
	createPlayerWithIDQuery = `
		INSERT INTO players (id, name, email, provider, provider_id, avatar_url, created_at) VALUES
		(:id, :name, :email, :provider, :provider_id, :avatar_url, :created_at)
	`
	updatePlayerNameAndAvatarQuery = `
		UPDATE players SET
		name = :name,
		avatar_url = :avatar_url
		WHERE id = :id
	`
)

func NewPlayerStore(db *sqlx.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

func (s *PlayerStore) GetPlayerByProvider(ctx context.Context, provider string, providerID string) (*bracket.Player, error) {
	var player bracket.Player
	err := s.db.GetContext(ctx, &player, getPlayerByProviderQuery, provider, providerID)
	if err != nil {
		return nil, err
	}

	return &player, nil
}

func (s *PlayerStore) GetPlayer(ctx context.Context, id int64) (*bracket.Player, error) {
	var player bracket.Player
	err := s.db.GetContext(ctx, &player, getPlayerQuery, id)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerStore) ListPlayers(ctx context.Context) ([]bracket.Player, error) {
	players := []bracket.Player{}
	err := s.db.SelectContext(ctx, &players, "SELECT * FROM players ORDER BY id ASC")
	return players, err
}

// CreatePlayer inserts the player. A non-zero ID is kept as is, which the guest account relies on.
func (s *PlayerStore) CreatePlayer(ctx context.Context, player *bracket.Player) error {
	if player.ID != 0 {
		_, err := s.db.NamedExecContext(ctx, createPlayerWithIDQuery, player)
		return err
	}

	res, err := s.db.NamedExecContext(ctx, createPlayerQuery, player)
	if err != nil {
		return err
	}
	player.ID, err = res.LastInsertId()
	return err
}

func (s *PlayerStore) UpdatePlayerNameAndAvatar(ctx context.Context, player *bracket.Player) error {
	_, err := s.db.NamedExecContext(ctx, updatePlayerNameAndAvatarQuery, player)
	return err
}

func (s *PlayerStore) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}
