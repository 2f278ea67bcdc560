package bracket

import (
	"fmt"
	"slices"
)

var allowedSlots = []int{2, 4, 8, 16}

func ValidSlots(slots int) bool {
	return slices.Contains(allowedSlots, slots)
}

// FirstRound lays out the empty opening matches for a tournament. Every match is named
// "Round 1 Match k" and starts without teams or a scheduled time.
func FirstRound(t *Tournament) ([]Match, error) {
	if !ValidSlots(t.Slots) {
		return nil, ErrInvalidBracketSize
	}

	count := t.Slots / 2
	matches := make([]Match, 0, count)
	for i := 1; i <= count; i++ {
		tournamentID := t.ID
		matches = append(matches, Match{
			Name:         MatchName(1, i),
			TournamentID: &tournamentID,
		})
	}
	return matches, nil
}

func MatchName(round, order int) string {
	return fmt.Sprintf("Round %d Match %d", round, order)
}
