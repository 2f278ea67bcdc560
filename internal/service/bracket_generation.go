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

type BracketService struct {
	db     *sqlx.DB
	stores *store.Stores
}

func NewBracketService(db *sqlx.DB, stores *store.Stores) *BracketService {
	return &BracketService{db: db, stores: stores}
}

// GenerateBracket creates the empty first-round matches for a stored tournament.
// Either every match is written or none is.
func (s *BracketService) GenerateBracket(ctx context.Context, tournamentID int64) ([]bracket.Match, error) {
	tournament, err := s.stores.Tournaments.GetTournament(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bracket.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	matches, err := bracket.FirstRound(tournament)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.stores.Matches.CreateMatches(ctx, tx, matches); err != nil {
		return nil, fmt.Errorf("failed to create matches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return matches, nil
}
