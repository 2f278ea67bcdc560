package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type MatchStore struct {
	db *sqlx.DB
}

const (
	insertMatchQuery = `
		INSERT INTO matches (name, tournament_id, team1_id, team2_id, time, match_link, spectator)
		VALUES (:name, :tournament_id, :team1_id, :team2_id, :time, :match_link, :spectator)
	`
	updateMatchQuery = `
		UPDATE matches SET
		name = :name,
		tournament_id = :tournament_id,
		team1_id = :team1_id,
		team2_id = :team2_id,
		time = :time,
		match_link = :match_link,
		spectator = :spectator
		WHERE id = :id
	`
)

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) CreateMatch(ctx context.Context, q sqlx.ExtContext, match *bracket.Match) error {
	res, err := sqlx.NamedExecContext(ctx, q, insertMatchQuery, match)
	if err != nil {
		return err
	}
	match.ID, err = res.LastInsertId()
	return err
}

// CreateMatches inserts the matches one by one so each gets its ID back. Callers pass a
// transaction when the batch has to land as a whole.
func (s *MatchStore) CreateMatches(ctx context.Context, q sqlx.ExtContext, matches []bracket.Match) error {
	for i := range matches {
		if err := s.CreateMatch(ctx, q, &matches[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *MatchStore) UpdateMatch(ctx context.Context, q sqlx.ExtContext, match *bracket.Match) error {
	_, err := sqlx.NamedExecContext(ctx, q, updateMatchQuery, match)
	return err
}

func (s *MatchStore) DeleteMatch(ctx context.Context, q sqlx.ExtContext, id int64) (bool, error) {
	res, err := q.ExecContext(ctx, "DELETE FROM matches WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *MatchStore) GetMatch(ctx context.Context, id int64) (*bracket.Match, error) {
	var match bracket.Match
	err := s.db.GetContext(ctx, &match, "SELECT * FROM matches WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *MatchStore) ListMatches(ctx context.Context) ([]bracket.Match, error) {
	matches := []bracket.Match{}
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches ORDER BY id ASC")
	return matches, err
}

func (s *MatchStore) GetMatches(ctx context.Context, tournamentID int64) ([]bracket.Match, error) {
	matches := []bracket.Match{}
	err := s.db.SelectContext(ctx, &matches, "SELECT * FROM matches WHERE tournament_id = ? ORDER BY id ASC", tournamentID)
	return matches, err
}
