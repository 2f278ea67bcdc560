package bracket

// Result records which team won a concluded match. It does not feed any later round.
type Result struct {
	ID           int64  `db:"id" json:"id"`
	TournamentID int64  `db:"tournament_id" json:"tournament"`
	WinnerID     *int64 `db:"winner_id" json:"winner"`
	MatchID      int64  `db:"match_id" json:"match"`
}
