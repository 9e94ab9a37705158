package repository

import (
	"context"
	"testing"

	"slovli/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildSettingsRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepositoryScoped(testDB.DB.Pool, 4000)
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), settings.GuildID)
	assert.Equal(t, 5, settings.WordLength)

	require.NoError(t, settings.SetWordLength(7))
	require.NoError(t, repo.Update(ctx, settings))

	fetched, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.WordLength)
}

func TestGuildSettingsRepository_UpdateMissing(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepositoryScoped(testDB.DB.Pool, 4001)
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	other := NewGuildSettingsRepositoryScoped(testDB.DB.Pool, 4002)
	err = other.Update(ctx, settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
