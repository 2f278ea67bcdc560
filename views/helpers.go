package views

import (
	"context"
	"fmt"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/middleware"
)

type TournamentPageData struct {
	Tournament *bracket.Tournament
	Teams      []bracket.Team
	Matches    []bracket.Match
	Results    []bracket.Result
	// Host is the site's own host name, needed by some stream embeds.
	Host string
}

func GetPlayer(ctx context.Context) *bracket.Player {
	return middleware.GetAuthenticatedPlayer(ctx)
}

func teamName(teams map[int64]bracket.Team, id *int64) string {
	if id == nil {
		return "TBD"
	}
	if team, ok := teams[*id]; ok {
		return team.Title
	}
	return "Unknown team"
}

func isWinner(bd BracketData, matchID int64, teamID *int64) bool {
	winner, decided := bd.Winners[matchID]
	return decided && teamID != nil && *teamID == winner
}

func roundTitle(round int) string {
	if round == 0 {
		return "Other matches"
	}
	return fmt.Sprintf("Round %d", round)
}
