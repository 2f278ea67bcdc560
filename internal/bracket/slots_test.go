package bracket

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstRound(t *testing.T) {
	testCases := []struct {
		slots         int
		expectedCount int
	}{
		{slots: 2, expectedCount: 1},
		{slots: 4, expectedCount: 2},
		{slots: 8, expectedCount: 4},
		{slots: 16, expectedCount: 8},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d slots", tc.slots), func(t *testing.T) {
			tournament := &Tournament{ID: 7, Slots: tc.slots}

			matches, err := FirstRound(tournament)
			require.NoError(t, err)
			require.Len(t, matches, tc.expectedCount)

			for i, m := range matches {
				assert.Equal(t, MatchName(1, i+1), m.Name)
				require.NotNil(t, m.TournamentID)
				assert.Equal(t, int64(7), *m.TournamentID)
				assert.Nil(t, m.Team1ID)
				assert.Nil(t, m.Team2ID)
				assert.Nil(t, m.Time)
				assert.True(t, m.IsBye())
			}
		})
	}
}

func TestFirstRound_InvalidSlots(t *testing.T) {
	for _, slots := range []int{-4, 0, 1, 3, 5, 6, 7, 12, 32, 64} {
		matches, err := FirstRound(&Tournament{ID: 1, Slots: slots})
		assert.ErrorIs(t, err, ErrInvalidBracketSize, "slots=%d", slots)
		assert.Empty(t, matches)
	}
}

func TestMatchHelpers(t *testing.T) {
	team := int64(3)
	tournament := int64(9)
	m := Match{Team1ID: &team, TournamentID: &tournament}

	assert.False(t, m.IsBye())
	assert.True(t, m.HasTeam(3))
	assert.False(t, m.HasTeam(4))
	assert.True(t, m.BelongsTo(9))
	assert.False(t, (&Match{}).BelongsTo(9))
}
