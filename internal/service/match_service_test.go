package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchFixture struct {
	svc        *MatchService
	db         *sqlx.DB
	stores     *store.Stores
	tournament *bracket.Tournament
	red        *bracket.Team
	blue       *bracket.Team
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()

	database := setupTestDB(t)
	stores := store.New(database)
	ctx := context.Background()

	red := &bracket.Team{Title: "Red", Description: "red side"}
	blue := &bracket.Team{Title: "Blue", Description: "blue side"}
	require.NoError(t, stores.Teams.CreateTeam(ctx, database, red))
	require.NoError(t, stores.Teams.CreateTeam(ctx, database, blue))

	return &matchFixture{
		svc:        NewMatchService(database, stores),
		db:         database,
		stores:     stores,
		tournament: storedTournament(t, database, stores, 4),
		red:        red,
		blue:       blue,
	}
}

func TestCreateMatch(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	scheduled := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	match, err := f.svc.CreateMatch(ctx, MatchInput{
		Name:       "Final",
		Tournament: &f.tournament.ID,
		Team1:      &f.red.ID,
		Team2:      &f.blue.ID,
		Time:       &scheduled,
		Link:       utils.Ptr("https://youtu.be/abc"),
	})
	require.NoError(t, err)
	require.NotZero(t, match.ID)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", fetched.Name)
	assert.Equal(t, f.red.ID, *fetched.Team1ID)
	assert.Equal(t, f.blue.ID, *fetched.Team2ID)
	assert.True(t, scheduled.Equal(*fetched.Time))

	bare, err := f.svc.CreateMatch(ctx, MatchInput{Name: "Exhibition"})
	require.NoError(t, err)
	assert.True(t, bare.IsBye())
	assert.Nil(t, bare.TournamentID)
}

func TestCreateMatch_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		input MatchInput
		field string
	}{
		{"missing name", MatchInput{}, "name"},
		{"unknown team", MatchInput{Name: "M", Team2: utils.Ptr(int64(9999))}, "team2"},
		{"unknown tournament", MatchInput{Name: "M", Tournament: utils.Ptr(int64(9999))}, "tournament"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newMatchFixture(t)

			_, err := f.svc.CreateMatch(context.Background(), tc.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tc.field)
			assert.Zero(t, countRows(t, f.db, "matches"))
		})
	}
}

func TestCreateMatch_StoresFreeFormFields(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	longName := strings.Repeat("m", 150)
	match, err := f.svc.CreateMatch(ctx, MatchInput{Name: longName, Link: utils.Ptr("not a url")})
	require.NoError(t, err)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, longName, fetched.Name)
	assert.Equal(t, "not a url", *fetched.Link)
}

func TestUpdateMatch_EmptyNameApplies(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.svc.CreateMatch(ctx, MatchInput{Name: "Old"})
	require.NoError(t, err)

	var patch MatchPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","team1":9999,"spectator":"x"}`), &patch))

	result, err := f.svc.UpdateMatch(ctx, match.ID, patch)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []string{"name", "spectator"}, result.Applied)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "team1", result.Skipped[0].Field)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, "", fetched.Name)
	assert.Equal(t, "x", *fetched.Spectator)
	assert.Nil(t, fetched.Team1ID)
}

func TestUpdateMatch_SkipsUnknownReference(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.svc.CreateMatch(ctx, MatchInput{Name: "Old Name", Team1: &f.red.ID})
	require.NoError(t, err)

	result, err := f.svc.UpdateMatch(ctx, match.ID, MatchPatch{
		Name:  Set("New Name"),
		Team1: Set(int64(9999)),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []string{"name"}, result.Applied)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "team1", result.Skipped[0].Field)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", fetched.Name)
	assert.Equal(t, f.red.ID, *fetched.Team1ID)
}

func TestUpdateMatch_AppliesFields(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	match, err := f.svc.CreateMatch(ctx, MatchInput{Name: "Semi", Team1: &f.red.ID, Spectator: utils.Ptr("row A")})
	require.NoError(t, err)

	scheduled := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	result, err := f.svc.UpdateMatch(ctx, match.ID, MatchPatch{
		Tournament: Set(f.tournament.ID),
		Team1:      Null[int64](),
		Team2:      Set(f.blue.ID),
		Time:       Set(scheduled),
		Link:       Set("https://example.com/stream"),
		Spectator:  Null[string](),
		Name:       Null[string](),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"tournament", "team1", "team2", "time", "match_link", "spectator"}, result.Applied)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "name", result.Skipped[0].Field)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, "Semi", fetched.Name)
	assert.Equal(t, f.tournament.ID, *fetched.TournamentID)
	assert.Nil(t, fetched.Team1ID)
	assert.Equal(t, f.blue.ID, *fetched.Team2ID)
	assert.True(t, scheduled.Equal(*fetched.Time))
	assert.Equal(t, "https://example.com/stream", *fetched.Link)
	assert.Nil(t, fetched.Spectator)
}

func TestUpdateMatch_NotFound(t *testing.T) {
	f := newMatchFixture(t)

	result, err := f.svc.UpdateMatch(context.Background(), 404, MatchPatch{Name: Set("x")})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Zero(t, countRows(t, f.db, "matches"))
}

func TestDeleteMatch(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	deleted, err := f.svc.DeleteMatch(ctx, 404)
	require.NoError(t, err)
	assert.False(t, deleted)

	match, err := f.svc.CreateMatch(ctx, MatchInput{Name: "Doomed"})
	require.NoError(t, err)

	deleted, err = f.svc.DeleteMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	fetched, err := f.svc.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestListMatches(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	_, err := NewBracketService(f.db, f.stores).GenerateBracket(ctx, f.tournament.ID)
	require.NoError(t, err)
	_, err = f.svc.CreateMatch(ctx, MatchInput{Name: "Loose"})
	require.NoError(t, err)

	all, err := f.svc.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inTournament, err := f.svc.ListTournamentMatches(ctx, f.tournament.ID)
	require.NoError(t, err)
	assert.Len(t, inTournament, 2)
}

func TestMatchPatch_UnmarshalJSON(t *testing.T) {
	var patch MatchPatch
	err := json.Unmarshal([]byte(`{"name":"Final","team1":null,"team2":3,"time":"2026-05-01T18:00:00Z"}`), &patch)
	require.NoError(t, err)

	assert.True(t, patch.Name.Set)
	assert.Equal(t, "Final", *patch.Name.Value)

	assert.True(t, patch.Team1.Set)
	assert.Nil(t, patch.Team1.Value)

	assert.True(t, patch.Team2.Set)
	assert.Equal(t, int64(3), *patch.Team2.Value)

	assert.True(t, patch.Time.Set)
	assert.False(t, patch.Tournament.Set)
	assert.False(t, patch.Link.Set)

	err = json.Unmarshal([]byte(`{"team1":"three"}`), &patch)
	assert.Error(t, err)
}
