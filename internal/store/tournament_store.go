package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) CreateTournament(ctx context.Context, q sqlx.ExtContext, tournament *bracket.Tournament) error {
	res, err := sqlx.NamedExecContext(ctx, q, `INSERT INTO tournaments (title, slots, start_date, end_date, winning_prize, details, image, creator_id, created_at)
        VALUES (:title, :slots, :start_date, :end_date, :winning_prize, :details, :image, :creator_id, :created_at)`, tournament)
	if err != nil {
		return err
	}
	tournament.ID, err = res.LastInsertId()
	return err
}

func (s *TournamentStore) UpdateTournament(ctx context.Context, q sqlx.ExtContext, tournament *bracket.Tournament) error {
	_, err := sqlx.NamedExecContext(ctx, q, `UPDATE tournaments SET
		title = :title,
		slots = :slots,
		start_date = :start_date,
		end_date = :end_date,
		winning_prize = :winning_prize,
		details = :details,
		image = :image,
		creator_id = :creator_id
		WHERE id = :id`, tournament)
	return err
}

func (s *TournamentStore) SetTournamentImage(ctx context.Context, id int64, image string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE tournaments SET image = ? WHERE id = ?", image, id)
	return err
}

// DeleteTournament removes the tournament and, through the schema, its matches and results.
// It reports whether a row was removed.
func (s *TournamentStore) DeleteTournament(ctx context.Context, q sqlx.ExtContext, id int64) (bool, error) {
	res, err := q.ExecContext(ctx, "DELETE FROM tournaments WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *TournamentStore) GetTournament(ctx context.Context, id int64) (*bracket.Tournament, error) {
	var tournament bracket.Tournament
	err := s.db.GetContext(ctx, &tournament, "SELECT * FROM tournaments WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentStore) ListTournaments(ctx context.Context) ([]bracket.Tournament, error) {
	tournaments := []bracket.Tournament{}
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments ORDER BY created_at DESC, id DESC")
	return tournaments, err
}

func (s *TournamentStore) GetTournamentsByCreator(ctx context.Context, creatorID int64) ([]bracket.Tournament, error) {
	tournaments := []bracket.Tournament{}
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments WHERE creator_id = ? ORDER BY created_at DESC, id DESC", creatorID)
	return tournaments, err
}
