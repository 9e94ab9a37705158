package services

import (
	"context"
	"testing"

	"slovli/domain/entities"
	"slovli/domain/events"
	"slovli/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	gameRepo       *testhelpers.MockGameRepository
	settingsRepo   *testhelpers.MockGuildSettingsRepository
	customWordRepo *testhelpers.MockCustomWordRepository
	pool           *testhelpers.MockWordPool
	stats          *testhelpers.MockStatsService
	publisher      *testhelpers.RecordingEventPublisher
}

func newSessionFixture() *sessionFixture {
	return &sessionFixture{
		gameRepo:       new(testhelpers.MockGameRepository),
		settingsRepo:   new(testhelpers.MockGuildSettingsRepository),
		customWordRepo: new(testhelpers.MockCustomWordRepository),
		pool:           new(testhelpers.MockWordPool),
		stats:          new(testhelpers.MockStatsService),
		publisher:      &testhelpers.RecordingEventPublisher{},
	}
}

func (f *sessionFixture) service(guildID int64) *gameSessionService {
	return NewGameSessionService(guildID, f.gameRepo, f.settingsRepo, f.customWordRepo, f.pool, f.stats, f.publisher).(*gameSessionService)
}

func (f *sessionFixture) assertExpectations(t *testing.T) {
	f.gameRepo.AssertExpectations(t)
	f.settingsRepo.AssertExpectations(t)
	f.customWordRepo.AssertExpectations(t)
	f.pool.AssertExpectations(t)
	f.stats.AssertExpectations(t)
}

func inProgressGame(t *testing.T, guildID int64, answer string) *entities.Game {
	t.Helper()
	game, err := entities.NewGame(guildID, answer, len([]rune(answer)))
	require.NoError(t, err)
	return game
}

func TestStartNew_DealsGameAtConfiguredLength(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.settingsRepo.On("GetOrCreate", ctx).Return(&entities.GuildSettings{GuildID: 1, WordLength: 5}, nil)
	f.gameRepo.On("GetActive", ctx).Return(nil, nil)
	f.pool.On("AnswerCandidates", 5).Return([]string{"ПЕСНЯ"})
	f.customWordRepo.On("WordsForLength", ctx, 5).Return([]string{}, nil)
	f.gameRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.Game")).Return(nil)

	result, err := f.service(1).StartNew(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, result.WordLength)
	assert.Empty(t, result.PreviousAnswer)

	require.Len(t, f.publisher.Events, 1)
	started, ok := f.publisher.Events[0].(events.GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), started.GuildID)
	assert.Equal(t, 5, started.WordLength)

	f.assertExpectations(t)
}

func TestStartNew_RevealsAbandonedAnswer(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	previous := inProgressGame(t, 1, "КНИГА")

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.settingsRepo.On("GetOrCreate", ctx).Return(&entities.GuildSettings{GuildID: 1, WordLength: 5}, nil)
	f.gameRepo.On("GetActive", ctx).Return(previous, nil)
	f.pool.On("AnswerCandidates", 5).Return([]string{"ПЕСНЯ"})
	f.customWordRepo.On("WordsForLength", ctx, 5).Return([]string{}, nil)
	f.gameRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.Game")).Return(nil)

	result, err := f.service(1).StartNew(ctx)
	require.NoError(t, err)
	assert.Equal(t, "КНИГА", result.PreviousAnswer)

	// Replacing a game is free: no stats were touched
	f.stats.AssertNotCalled(t, "ApplyGuildResult", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestStartNew_EmptyPool(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.settingsRepo.On("GetOrCreate", ctx).Return(&entities.GuildSettings{GuildID: 1, WordLength: 9}, nil)
	f.gameRepo.On("GetActive", ctx).Return(nil, nil)
	f.pool.On("AnswerCandidates", 9).Return([]string{})
	f.customWordRepo.On("WordsForLength", ctx, 9).Return([]string{}, nil)

	_, err := f.service(1).StartNew(ctx)
	assert.ErrorIs(t, err, entities.ErrEmptyAnswerPool)
	assert.Empty(t, f.publisher.Events)
}

func TestStartNew_CustomWordsJoinAnswerPool(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.settingsRepo.On("GetOrCreate", ctx).Return(&entities.GuildSettings{GuildID: 1, WordLength: 7}, nil)
	f.gameRepo.On("GetActive", ctx).Return(nil, nil)
	f.pool.On("AnswerCandidates", 7).Return([]string{})
	f.customWordRepo.On("WordsForLength", ctx, 7).Return([]string{"ПАРОХОД"}, nil)
	f.gameRepo.On("Upsert", ctx, mock.MatchedBy(func(g *entities.Game) bool {
		return g.Answer == "ПАРОХОД"
	})).Return(nil)

	result, err := f.service(1).StartNew(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, result.WordLength)
	f.assertExpectations(t)
}

func TestSubmitGuess_NoActiveGame(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(nil, nil)

	_, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "песня")
	assert.ErrorIs(t, err, entities.ErrNoActiveGame)
}

func TestSubmitGuess_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		wantErr error
	}{
		{
			name:    "wrong length",
			rawText: "дом",
			wantErr: entities.ErrWrongLength,
		},
		{
			name:    "stripped to wrong length",
			rawText: "до7м9",
			wantErr: entities.ErrWrongLength,
		},
		{
			name:    "empty after normalization",
			rawText: "hello",
			wantErr: entities.ErrWrongLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture()
			ctx := context.Background()

			f.gameRepo.On("LockGuild", ctx).Return(nil)
			f.gameRepo.On("GetActive", ctx).Return(inProgressGame(t, 1, "ПЕСНЯ"), nil)

			_, err := f.service(1).SubmitGuess(ctx, 42, "Вера", tt.rawText)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitGuess_NotInDictionary(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(inProgressGame(t, 1, "ПЕСНЯ"), nil)
	f.pool.On("Contains", "ЯЯЯЯЯ").Return(false)
	f.customWordRepo.On("WordsForLength", ctx, 5).Return([]string{}, nil)

	_, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "яяяяя")
	assert.ErrorIs(t, err, entities.ErrNotInDictionary)
}

func TestSubmitGuess_AlreadyGuessed(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	game := inProgressGame(t, 1, "ПЕСНЯ")
	game.RecordAttempt("ГОРКА", ScoreGuess("ГОРКА", "ПЕСНЯ"), 7)

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(game, nil)
	f.pool.On("Contains", "ГОРКА").Return(true)

	_, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "горка")
	assert.ErrorIs(t, err, entities.ErrAlreadyGuessed)
}

func TestSubmitGuess_ContinuePersistsAttempt(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(inProgressGame(t, 1, "ПЕСНЯ"), nil)
	f.pool.On("Contains", "ГОРКА").Return(true)
	f.gameRepo.On("Upsert", ctx, mock.MatchedBy(func(g *entities.Game) bool {
		return g.AttemptCount() == 1 && g.IsInProgress()
	})).Return(nil)

	outcome, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "горка")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeContinue, outcome.Kind)
	assert.Equal(t, 1, outcome.AttemptCount)
	assert.Equal(t, 5, outcome.RemainingAttempts)
	assert.Empty(t, outcome.Answer)
	assert.Len(t, outcome.History, 1)
	assert.Empty(t, f.publisher.Events)
	f.assertExpectations(t)
}

func TestSubmitGuess_WinCreditsGuesserAndGuild(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	game := inProgressGame(t, 1, "ПЕСНЯ")
	game.RecordAttempt("ГОРКА", ScoreGuess("ГОРКА", "ПЕСНЯ"), 7)

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(game, nil)
	f.pool.On("Contains", "ПЕСНЯ").Return(true)
	f.stats.On("ApplyPlayerResult", ctx, int64(42), true, 2).Return(nil)
	f.stats.On("RecordGuildWin", ctx, int64(42), "Вера").Return(nil)
	f.stats.On("ApplyGuildResult", ctx, true, 2).Return(nil)
	f.gameRepo.On("Delete", ctx).Return(nil)

	outcome, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "Песня")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeWon, outcome.Kind)
	assert.Equal(t, "ПЕСНЯ", outcome.Answer)
	assert.Equal(t, 2, outcome.AttemptCount)

	require.Len(t, f.publisher.Events, 1)
	completed, ok := f.publisher.Events[0].(events.GameCompletedEvent)
	require.True(t, ok)
	assert.True(t, completed.Won)
	assert.Equal(t, int64(42), completed.WinnerID)
	assert.Equal(t, "ПЕСНЯ", completed.Answer)

	f.assertExpectations(t)
}

func TestSubmitGuess_SixthMissLosesGame(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	game := inProgressGame(t, 1, "ПЕСНЯ")
	for _, w := range []string{"ГОРКА", "ВАГОН", "ЛОДКА", "МЕТРО", "ЗЕБРА"} {
		game.RecordAttempt(w, ScoreGuess(w, "ПЕСНЯ"), 7)
	}
	require.Equal(t, 1, game.RemainingAttempts())

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(game, nil)
	f.pool.On("Contains", "ТОЧКА").Return(true)
	f.stats.On("ApplyGuildResult", ctx, false, 6).Return(nil)
	f.gameRepo.On("Delete", ctx).Return(nil)

	outcome, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "точка")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeLost, outcome.Kind)
	assert.Equal(t, "ПЕСНЯ", outcome.Answer)
	assert.Equal(t, 0, outcome.RemainingAttempts)

	// A guild loss never penalizes individual players
	f.stats.AssertNotCalled(t, "ApplyPlayerResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.stats.AssertNotCalled(t, "RecordGuildWin", mock.Anything, mock.Anything, mock.Anything)

	require.Len(t, f.publisher.Events, 1)
	completed, ok := f.publisher.Events[0].(events.GameCompletedEvent)
	require.True(t, ok)
	assert.False(t, completed.Won)
	assert.Equal(t, int64(0), completed.WinnerID)

	f.assertExpectations(t)
}

func TestSubmitGuess_CustomWordAccepted(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(inProgressGame(t, 1, "ПЕСНЯ"), nil)
	f.pool.On("Contains", "ЯХОНТ").Return(false)
	f.customWordRepo.On("WordsForLength", ctx, 5).Return([]string{"ЯХОНТ"}, nil)
	f.gameRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.Game")).Return(nil)

	outcome, err := f.service(1).SubmitGuess(ctx, 42, "Вера", "яхонт")
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeContinue, outcome.Kind)
	f.assertExpectations(t)
}

func TestGiveUp(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(inProgressGame(t, 1, "ПЕСНЯ"), nil)
	f.gameRepo.On("Delete", ctx).Return(nil)

	answer, err := f.service(1).GiveUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ПЕСНЯ", answer)

	// Surrender touches neither stats nor the event stream
	f.stats.AssertNotCalled(t, "ApplyGuildResult", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.Events)
	f.assertExpectations(t)
}

func TestGiveUp_NoActiveGame(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	f.gameRepo.On("LockGuild", ctx).Return(nil)
	f.gameRepo.On("GetActive", ctx).Return(nil, nil)

	_, err := f.service(1).GiveUp(ctx)
	assert.ErrorIs(t, err, entities.ErrNoActiveGame)
}
