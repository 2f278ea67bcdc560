package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/tournament-app/internal/bracket"
	"github.com/AdamBeresnev/tournament-app/internal/store"
	"github.com/AdamBeresnev/tournament-app/internal/utils"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	database := setupTestDB(t)
	stores := store.New(database)
	players := NewPlayerService(stores.Players)
	teams := NewTeamService(database, stores)
	ctx := context.Background()

	captain, err := players.CreatePlayer(ctx, PlayerInput{Name: "Cap"})
	require.NoError(t, err)
	member, err := players.CreatePlayer(ctx, PlayerInput{Name: "Mem", Email: utils.Ptr("mem@example.com")})
	require.NoError(t, err)

	team, err := teams.CreateTeam(ctx, TeamInput{
		Title:       "Wolves",
		Description: "Pack",
		Captain:     &captain.ID,
		Members:     []int64{captain.ID, member.ID},
	})
	require.NoError(t, err)

	fetched, err := teams.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wolves", fetched.Title)
	assert.Equal(t, captain.ID, *fetched.CaptainID)
	assert.Equal(t, []int64{captain.ID, member.ID}, fetched.Members)

	_, err = teams.CreateTeam(ctx, TeamInput{Title: "Ghosts", Description: "x", Members: []int64{999}})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Equal(t, 1, countRows(t, database, "teams"))
}

func TestAddMemberAndDeleteTeam(t *testing.T) {
	database := setupTestDB(t)
	stores := store.New(database)
	players := NewPlayerService(stores.Players)
	teams := NewTeamService(database, stores)
	ctx := context.Background()

	player, err := players.CreatePlayer(ctx, PlayerInput{Name: "Late Joiner"})
	require.NoError(t, err)
	team, err := teams.CreateTeam(ctx, TeamInput{Title: "Owls", Description: "Night"})
	require.NoError(t, err)
	assert.Equal(t, []int64{}, team.Members)

	updated, err := teams.AddMember(ctx, team.ID, player.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{player.ID}, updated.Members)

	updated, err = teams.AddMember(ctx, team.ID, player.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{player.ID}, updated.Members)

	missing, err := teams.AddMember(ctx, 404, player.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	match := &bracket.Match{Name: "Friendly", Team1ID: &team.ID}
	require.NoError(t, stores.Matches.CreateMatch(ctx, database, match))

	deleted, err := teams.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Zero(t, countRows(t, database, "matches"))

	deleted, err = teams.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFindOrCreatePlayerByProvider(t *testing.T) {
	database := setupTestDB(t)
	players := NewPlayerService(store.NewPlayerStore(database))
	ctx := context.Background()

	gothUser := goth.User{
		Provider:  "discord",
		UserID:    "42",
		NickName:  "ace",
		Email:     "ace@example.com",
		AvatarURL: "https://cdn.example.com/ace.png",
	}

	created, err := players.FindOrCreatePlayerByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, "ace", created.Name)

	gothUser.NickName = "ace2"
	gothUser.AvatarURL = "https://cdn.example.com/ace2.png"
	found, err := players.FindOrCreatePlayerByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	fetched, err := players.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ace2", fetched.Name)
	assert.Equal(t, "https://cdn.example.com/ace2.png", *fetched.AvatarURL)
	assert.Equal(t, 1, countRows(t, database, "players"))
}

func TestEnsureGuestPlayer(t *testing.T) {
	database := setupTestDB(t)
	players := NewPlayerService(store.NewPlayerStore(database))
	ctx := context.Background()

	guest, err := players.EnsureGuestPlayer(ctx)
	require.NoError(t, err)

	again, err := players.EnsureGuestPlayer(ctx)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, again.ID)
	assert.Equal(t, 1, countRows(t, database, "players"))
}

func TestPlayerCRUD(t *testing.T) {
	database := setupTestDB(t)
	players := NewPlayerService(store.NewPlayerStore(database))
	ctx := context.Background()

	_, err := players.CreatePlayer(ctx, PlayerInput{Name: ""})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = players.CreatePlayer(ctx, PlayerInput{Name: "x", Email: utils.Ptr("nope")})
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")

	player, err := players.CreatePlayer(ctx, PlayerInput{Name: "Solo"})
	require.NoError(t, err)

	all, err := players.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := players.DeletePlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := players.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
