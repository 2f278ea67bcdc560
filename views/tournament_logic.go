package views

import (
	"fmt"
	"sort"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
)

// BracketData is a tournament's matches grouped into columns by round.
type BracketData struct {
	Rounds    map[int][]bracket.Match
	RoundNums []int
	TeamMap   map[int64]bracket.Team
	// Winners maps a match ID to the winning team's ID.
	Winners map[int64]int64
}

// matchPosition reads round and order back out of a generated match name. Hand-made matches
// that do not follow the pattern land in round 0.
func matchPosition(name string) (round, order int) {
	if _, err := fmt.Sscanf(name, "Round %d Match %d", &round, &order); err != nil {
		return 0, 0
	}
	return round, order
}

func PrepareBracketData(teams []bracket.Team, matches []bracket.Match, results []bracket.Result) BracketData {
	teamMap := make(map[int64]bracket.Team, len(teams))
	for _, t := range teams {
		teamMap[t.ID] = t
	}

	winners := make(map[int64]int64)
	for _, r := range results {
		if r.WinnerID != nil {
			winners[r.MatchID] = *r.WinnerID
		}
	}

	rounds := make(map[int][]bracket.Match)
	var roundNums []int
	for _, m := range matches {
		round, _ := matchPosition(m.Name)
		if _, exists := rounds[round]; !exists {
			roundNums = append(roundNums, round)
		}
		rounds[round] = append(rounds[round], m)
	}

	sort.Ints(roundNums)
	sortRounds(rounds, roundNums)

	return BracketData{
		Rounds:    rounds,
		RoundNums: roundNums,
		TeamMap:   teamMap,
		Winners:   winners,
	}
}

func sortRounds(rounds map[int][]bracket.Match, roundNums []int) {
	for _, r := range roundNums {
		sort.SliceStable(rounds[r], func(i, j int) bool {
			_, oi := matchPosition(rounds[r][i].Name)
			_, oj := matchPosition(rounds[r][j].Name)
			if oi != oj {
				return oi < oj
			}
			return rounds[r][i].ID < rounds[r][j].ID
		})
	}
}
