package repository

import (
	"context"
	"testing"

	"slovli/domain/entities"
	"slovli/domain/events"
	"slovli/domain/testhelpers"
	"slovli/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitPersistsAndKeepsEvents(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	publisher := &testhelpers.RecordingEventPublisher{}
	uow := CreateTestUnitOfWork(testDB.DB, 100, publisher)

	require.NoError(t, uow.Begin(ctx))

	game, err := entities.NewGame(100, "ПЕСНЯ", 5)
	require.NoError(t, err)
	require.NoError(t, uow.GameRepository().Upsert(ctx, game))
	require.NoError(t, uow.EventBus().Publish(events.GameStartedEvent{GuildID: 100, WordLength: 5}))

	require.NoError(t, uow.Commit())
	assert.Len(t, publisher.Events, 1)

	// Data is visible outside the transaction
	repo := NewGameRepositoryScoped(testDB.DB.Pool, 100)
	fetched, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "ПЕСНЯ", fetched.Answer)
}

func TestUnitOfWork_RollbackDiscardsEverything(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	publisher := &testhelpers.RecordingEventPublisher{}
	uow := CreateTestUnitOfWork(testDB.DB, 200, publisher)

	require.NoError(t, uow.Begin(ctx))

	game, err := entities.NewGame(200, "КНИГА", 5)
	require.NoError(t, err)
	require.NoError(t, uow.GameRepository().Upsert(ctx, game))
	require.NoError(t, uow.EventBus().Publish(events.GameStartedEvent{GuildID: 200, WordLength: 5}))

	require.NoError(t, uow.Rollback())
	assert.Empty(t, publisher.Events)

	repo := NewGameRepositoryScoped(testDB.DB.Pool, 200)
	fetched, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestUnitOfWork_RequiresBegin(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	uow := CreateTestUnitOfWork(testDB.DB, 300, &testhelpers.RecordingEventPublisher{})

	assert.Panics(t, func() { uow.GameRepository() })
	assert.Error(t, uow.Commit())
	assert.NoError(t, uow.Rollback())
}
