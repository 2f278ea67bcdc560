package bracket

import (
	"time"
)

type Match struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	TournamentID *int64 `db:"tournament_id" json:"tournament"`

	Team1ID *int64 `db:"team1_id" json:"team1"`
	Team2ID *int64 `db:"team2_id" json:"team2"`

	Time      *time.Time `db:"time" json:"time"`
	Link      *string    `db:"match_link" json:"match_link"`
	Spectator *string    `db:"spectator" json:"spectator"`
}

// IsBye reports whether the match is still an empty placeholder waiting for teams.
func (m *Match) IsBye() bool {
	return m.Team1ID == nil && m.Team2ID == nil
}

func (m *Match) HasTeam(teamID int64) bool {
	return (m.Team1ID != nil && *m.Team1ID == teamID) || (m.Team2ID != nil && *m.Team2ID == teamID)
}

func (m *Match) BelongsTo(tournamentID int64) bool {
	return m.TournamentID != nil && *m.TournamentID == tournamentID
}
