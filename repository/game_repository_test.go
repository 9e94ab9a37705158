package repository

import (
	"context"
	"testing"

	"slovli/domain/entities"
	"slovli/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_UpsertAndGetActive(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameRepositoryScoped(testDB.DB.Pool, 123456789)
	ctx := context.Background()

	// No game yet
	game, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, game)

	created, err := entities.NewGame(123456789, "ПЕСНЯ", 5)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, created))

	fetched, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, int64(123456789), fetched.GuildID)
	assert.Equal(t, "ПЕСНЯ", fetched.Answer)
	assert.Equal(t, 5, fetched.WordLength)
	assert.Equal(t, entities.GameStatusInProgress, fetched.Status)
	assert.Empty(t, fetched.Attempts)
}

func TestGameRepository_AttemptsRoundtrip(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameRepositoryScoped(testDB.DB.Pool, 555)
	ctx := context.Background()

	game, err := entities.NewGame(555, "КНИГА", 5)
	require.NoError(t, err)
	game.RecordAttempt("ГАЗОН", []entities.Mark{
		entities.MarkPresent,
		entities.MarkPresent,
		entities.MarkAbsent,
		entities.MarkAbsent,
		entities.MarkAbsent,
	}, 42)
	require.NoError(t, repo.Upsert(ctx, game))

	fetched, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Len(t, fetched.Attempts, 1)
	assert.Equal(t, "ГАЗОН", fetched.Attempts[0].Word)
	assert.Equal(t, int64(42), fetched.Attempts[0].GuesserID)
	assert.Equal(t, entities.MarkPresent, fetched.Attempts[0].Marks[0])
	assert.Equal(t, entities.MarkAbsent, fetched.Attempts[0].Marks[4])
}

func TestGameRepository_GuildScoping(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	repoA := NewGameRepositoryScoped(testDB.DB.Pool, 1001)
	repoB := NewGameRepositoryScoped(testDB.DB.Pool, 1002)

	gameA, err := entities.NewGame(1001, "СЛОВО", 5)
	require.NoError(t, err)
	require.NoError(t, repoA.Upsert(ctx, gameA))

	// Guild B sees no game
	fetched, err := repoB.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	// Deleting B's (missing) game leaves A's intact
	require.NoError(t, repoB.Delete(ctx))
	fetched, err = repoA.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "СЛОВО", fetched.Answer)
}

func TestGameRepository_Delete(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGameRepositoryScoped(testDB.DB.Pool, 777)
	ctx := context.Background()

	game, err := entities.NewGame(777, "ВАГОН", 5)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, game))

	require.NoError(t, repo.Delete(ctx))

	fetched, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	// Deleting again is not an error
	require.NoError(t, repo.Delete(ctx))
}
