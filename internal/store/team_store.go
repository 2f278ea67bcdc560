package store

import (
	"context"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/jmoiron/sqlx"
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

type teamMember struct {
	TeamID   int64 `db:"team_id"`
	PlayerID int64 `db:"player_id"`
}

// CreateTeam inserts the team row followed by its member links.
func (s *TeamStore) CreateTeam(ctx context.Context, q sqlx.ExtContext, team *bracket.Team) error {
	res, err := sqlx.NamedExecContext(ctx, q, `INSERT INTO teams (title, description, captain_id)
		VALUES (:title, :description, :captain_id)`, team)
	if err != nil {
		return err
	}
	if team.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	for _, playerID := range team.Members {
		if err := s.AddMember(ctx, q, team.ID, playerID); err != nil {
			return err
		}
	}
	return nil
}

func (s *TeamStore) AddMember(ctx context.Context, q sqlx.ExtContext, teamID, playerID int64) error {
	_, err := sqlx.NamedExecContext(ctx, q, `INSERT OR IGNORE INTO team_members (team_id, player_id)
		VALUES (:team_id, :player_id)`, teamMember{TeamID: teamID, PlayerID: playerID})
	return err
}

func (s *TeamStore) GetTeam(ctx context.Context, id int64) (*bracket.Team, error) {
	var team bracket.Team
	if err := s.db.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = ?", id); err != nil {
		return nil, err
	}

	team.Members = []int64{}
	err := s.db.SelectContext(ctx, &team.Members, "SELECT player_id FROM team_members WHERE team_id = ? ORDER BY player_id", id)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamStore) ListTeams(ctx context.Context) ([]bracket.Team, error) {
	teams := []bracket.Team{}
	if err := s.db.SelectContext(ctx, &teams, "SELECT * FROM teams ORDER BY id ASC"); err != nil {
		return nil, err
	}

	var members []teamMember
	if err := s.db.SelectContext(ctx, &members, "SELECT team_id, player_id FROM team_members ORDER BY team_id, player_id"); err != nil {
		return nil, err
	}

	byTeam := make(map[int64][]int64)
	for _, m := range members {
		byTeam[m.TeamID] = append(byTeam[m.TeamID], m.PlayerID)
	}
	for i := range teams {
		teams[i].Members = byTeam[teams[i].ID]
		if teams[i].Members == nil {
			teams[i].Members = []int64{}
		}
	}
	return teams, nil
}

func (s *TeamStore) DeleteTeam(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected(res)
}
