package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/jmoiron/sqlx"
)

type TeamService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewTeamService(db *sqlx.DB, stores *store.Stores) *TeamService {
	return &TeamService{db: db, stores: stores}
}

type TeamInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Captain     *int64  `json:"captain"`
	Members     []int64 `json:"members"`
}

func (s *TeamService) CreateTeam(ctx context.Context, input TeamInput) (*bracket.Team, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	if input.Captain != nil {
		if err := s.requirePlayer(ctx, "captain", *input.Captain); err != nil {
			return nil, err
		}
	}
	for _, id := range input.Members {
		if err := s.requirePlayer(ctx, "members", id); err != nil {
			return nil, err
		}
	}

	team := &bracket.Team{
		Title:       input.Title,
		Description: input.Description,
		CaptainID:   input.Captain,
		Members:     input.Members,
	}
	if team.Members == nil {
		team.Members = []int64{}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.stores.Teams.CreateTeam(ctx, tx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]bracket.Team, error) {
	return s.stores.Teams.ListTeams(ctx)
}

// GetTeam returns nil when there is no team with that ID.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*bracket.Team, error) {
	team, err := s.stores.Teams.GetTeam(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return team, err
}

// AddMember puts the player on the team. Adding someone twice is a no-op. A missing team yields nil.
func (s *TeamService) AddMember(ctx context.Context, teamID, playerID int64) (*bracket.Team, error) {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil || team == nil {
		return nil, err
	}
	if err := s.requirePlayer(ctx, "player", playerID); err != nil {
		return nil, err
	}

	if err := s.stores.Teams.AddMember(ctx, s.db, teamID, playerID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return s.GetTeam(ctx, teamID)
}

// DeleteTeam removes the team. Matches it plays in go with it.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) (bool, error) {
	return s.stores.Teams.DeleteTeam(ctx, id)
}

func (s *TeamService) requirePlayer(ctx context.Context, field string, id int64) error {
	if _, err := s.stores.Players.GetPlayer(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invalidField(field, fmt.Errorf("%w: %d", ErrPlayerNotFound, id))
		}
		return fmt.Errorf("failed to get player: %w", err)
	}
	return nil
}
