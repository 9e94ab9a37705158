package repository

import (
	"context"
	"testing"

	"slovli/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerStatsRepository_GetOrCreate(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPlayerStatsRepositoryWithTx(testDB.DB.Pool)
	ctx := context.Background()

	// Get before any row exists
	stats, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, stats)

	created, err := repo.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(42), created.DiscordID)
	assert.Equal(t, int64(0), created.Played)
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0}, created.AttemptDist)

	// Second call returns the same row
	again, err := repo.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, created.DiscordID, again.DiscordID)
}

func TestPlayerStatsRepository_Update(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPlayerStatsRepositoryWithTx(testDB.DB.Pool)
	ctx := context.Background()

	stats, err := repo.GetOrCreate(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, stats.ApplyResult(true, 3))
	require.NoError(t, repo.Update(ctx, stats))

	fetched, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, int64(1), fetched.Played)
	assert.Equal(t, int64(1), fetched.Wins)
	assert.Equal(t, int64(1), fetched.CurrentStreak)
	assert.Equal(t, int64(1), fetched.MaxStreak)
	assert.Equal(t, []int64{0, 0, 1, 0, 0, 0}, fetched.AttemptDist)
}

func TestGuildStatsRepository_Lifecycle(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repo := NewGuildStatsRepositoryScoped(testDB.DB.Pool, 9001)
	other := NewGuildStatsRepositoryScoped(testDB.DB.Pool, 9002)

	stats, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9001), stats.GuildID)

	require.NoError(t, stats.ApplyResult(false, 6))
	require.NoError(t, repo.Update(ctx, stats))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, int64(1), fetched.Played)
	assert.Equal(t, int64(0), fetched.Wins)
	assert.Equal(t, int64(0), fetched.CurrentStreak)

	// Other guild is untouched
	otherStats, err := other.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, otherStats)
}

func TestGuildUserWinRepository_Leaderboard(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildUserWinRepositoryScoped(testDB.DB.Pool, 3000)
	ctx := context.Background()

	record := func(discordID int64, name string, times int) {
		for i := 0; i < times; i++ {
			require.NoError(t, repo.RecordWin(ctx, discordID, name))
		}
	}

	record(1, "Вера", 3)
	record(2, "Антон", 5)
	record(3, "Борис", 5)

	entries, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ties on wins resolve by display name ascending
	assert.Equal(t, "Антон", entries[0].DisplayName)
	assert.Equal(t, int64(5), entries[0].Wins)
	assert.Equal(t, "Борис", entries[1].DisplayName)
	assert.Equal(t, int64(5), entries[1].Wins)
	assert.Equal(t, "Вера", entries[2].DisplayName)
	assert.Equal(t, int64(3), entries[2].Wins)
}

func TestGuildUserWinRepository_DisplayNameOverwrite(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildUserWinRepositoryScoped(testDB.DB.Pool, 3001)
	ctx := context.Background()

	require.NoError(t, repo.RecordWin(ctx, 1, "СтароеИмя"))
	require.NoError(t, repo.RecordWin(ctx, 1, "НовоеИмя"))

	entries, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "НовоеИмя", entries[0].DisplayName)
	assert.Equal(t, int64(2), entries[0].Wins)
}

func TestGuildUserWinRepository_Limit(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildUserWinRepositoryScoped(testDB.DB.Pool, 3002)
	ctx := context.Background()

	for i := int64(1); i <= 12; i++ {
		require.NoError(t, repo.RecordWin(ctx, i, "Игрок"))
	}

	entries, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
