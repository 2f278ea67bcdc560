package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type ResultStore struct {
	db *sqlx.DB
}

func NewResultStore(db *sqlx.DB) *ResultStore {
	return &ResultStore{db: db}
}

func (s *ResultStore) CreateResult(ctx context.Context, result *bracket.Result) error {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO tournament_results (tournament_id, winner_id, match_id)
		VALUES (:tournament_id, :winner_id, :match_id)`, result)
	if err != nil {
		return err
	}
	result.ID, err = res.LastInsertId()
	return err
}

func (s *ResultStore) GetResults(ctx context.Context, tournamentID int64) ([]bracket.Result, error) {
	results := []bracket.Result{}
	err := s.db.SelectContext(ctx, &results, "SELECT * FROM tournament_results WHERE tournament_id = ? ORDER BY id ASC", tournamentID)
	return results, err
}
