package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	database, err := OpenMemory()
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database.DB))
	// Applying again is a no-op.
	require.NoError(t, RunMigrations(database.DB))

	for _, table := range []string{"players", "teams", "team_members", "tournaments", "matches", "tournament_results", "products", "payment_history", "sessions"} {
		var count int
		err := database.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	var fk int
	require.NoError(t, database.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}
