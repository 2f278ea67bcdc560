package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/markbates/goth"
)

type PlayerService struct {
	store *store.PlayerStore
}

func NewPlayerService(store *store.PlayerStore) *PlayerService {
	return &PlayerService{store: store}
}

type PlayerInput struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (s *PlayerService) FindOrCreatePlayerByProvider(ctx context.Context, gothUser goth.User) (*bracket.Player, error) {
	player, err := s.store.GetPlayerByProvider(ctx, gothUser.Provider, gothUser.UserID)
	if err == nil {
		name := displayName(gothUser)
		if utils.OrZero(player.AvatarURL) != gothUser.AvatarURL || player.Name != name {
			player.Name = name
			player.AvatarURL = utils.StringOrNil(gothUser.AvatarURL)
			if err := s.store.UpdatePlayerNameAndAvatar(ctx, player); err != nil {
				slog.Warn("failed to refresh player profile", "player_id", player.ID, "error", err)
			}
		}
		return player, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		player = &bracket.Player{
			Name:       displayName(gothUser),
			Email:      utils.StringOrNil(gothUser.Email),
			Provider:   &gothUser.Provider,
			ProviderID: &gothUser.UserID,
			AvatarURL:  utils.StringOrNil(gothUser.AvatarURL),
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.store.CreatePlayer(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	return nil, err
}

func displayName(u goth.User) string {
	switch {
	case u.NickName != "":
		return u.NickName
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

func (s *PlayerService) EnsureGuestPlayer(ctx context.Context) (*bracket.Player, error) {
	player, err := s.store.GetPlayer(ctx, middleware.GuestPlayerID)
	if err == nil {
		return player, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		guest := &bracket.Player{
			ID:        middleware.GuestPlayerID,
			Name:      "Guest Player",
			Email:     utils.Ptr("guest@tournament.app"),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.CreatePlayer(ctx, guest); err != nil {
			return nil, fmt.Errorf("failed to create guest player: %w", err)
		}
		return guest, nil
	}
	return nil, err
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (*bracket.Player, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	player := &bracket.Player{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]bracket.Player, error) {
	return s.store.ListPlayers(ctx)
}

// GetPlayer returns nil when there is no player with that ID.
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*bracket.Player, error) {
	player, err := s.store.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return player, err
}

// DeletePlayer removes the player. Teams they captained and tournaments they created are kept.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	return s.store.DeletePlayer(ctx, id)
}
