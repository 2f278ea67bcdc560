package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResult(t *testing.T) {
	database := setupTestDB(t)
	stores := store.New(database)
	results := NewResultService(stores)
	ctx := context.Background()

	tournament := storedTournament(t, database, stores, 2)
	other := storedTournament(t, database, stores, 2)

	red := &bracket.Team{Title: "Red"}
	blue := &bracket.Team{Title: "Blue"}
	green := &bracket.Team{Title: "Green"}
	for _, team := range []*bracket.Team{red, blue, green} {
		require.NoError(t, stores.Teams.CreateTeam(ctx, database, team))
	}

	final := &bracket.Match{Name: "Final", TournamentID: &tournament.ID, Team1ID: &red.ID, Team2ID: &blue.ID}
	require.NoError(t, stores.Matches.CreateMatch(ctx, database, final))

	testCases := []struct {
		name  string
		input ResultInput
		err   error
	}{
		{"unknown tournament", ResultInput{Tournament: 404, Match: final.ID, Winner: &red.ID}, bracket.ErrTournamentNotFound},
		{"unknown match", ResultInput{Tournament: tournament.ID, Match: 404, Winner: &red.ID}, ErrMatchNotFound},
		{"match from another tournament", ResultInput{Tournament: other.ID, Match: final.ID, Winner: &red.ID}, ErrMatchNotInEvent},
		{"unknown winner", ResultInput{Tournament: tournament.ID, Match: final.ID, Winner: utils.Ptr(int64(404))}, ErrTeamNotFound},
		{"winner not playing", ResultInput{Tournament: tournament.ID, Match: final.ID, Winner: &green.ID}, ErrWinnerNotInMatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := results.RecordResult(ctx, tc.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	result, err := results.RecordResult(ctx, ResultInput{Tournament: tournament.ID, Match: final.ID, Winner: &blue.ID})
	require.NoError(t, err)
	assert.NotZero(t, result.ID)

	listed, err := results.ListResults(ctx, tournament.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, blue.ID, *listed[0].WinnerID)

	// Recording a result never fills in another match.
	matches, err := stores.Matches.GetMatches(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	missing, err := results.ListResults(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
