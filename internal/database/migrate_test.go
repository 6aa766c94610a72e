package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/accrual-engine/internal/database"
	"github.com/segyhp/accrual-engine/internal/database/testutil"
)

func TestMigrations_UpDownStatus(t *testing.T) {
	tdb := testutil.SetupTestDatabase(t)

	status, err := database.GetMigrationStatus(tdb.URL)
	require.NoError(t, err)
	assert.True(t, status.Applied)
	assert.Equal(t, uint(1), status.Version)
	assert.False(t, status.Dirty)

	var plans int
	require.NoError(t, tdb.DB.Get(&plans, `SELECT COUNT(*) FROM investment_plans`))
	assert.Equal(t, 7, plans)

	// Up again is a no-op
	require.NoError(t, database.MigrateUp(tdb.URL))

	require.NoError(t, database.MigrateDown(tdb.URL, 1))
	status, err = database.GetMigrationStatus(tdb.URL)
	require.NoError(t, err)
	assert.False(t, status.Applied)

	require.NoError(t, database.MigrateUp(tdb.URL))
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	err := database.MigrateDown("postgres://unused", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be positive")
}
