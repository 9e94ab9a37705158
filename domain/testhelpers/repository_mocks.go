package testhelpers

import (
	"context"

	"slovli/domain/entities"
	"slovli/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) LockGuild(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGameRepository) GetActive(ctx context.Context) (*entities.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

func (m *MockGameRepository) Upsert(ctx context.Context, game *entities.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPlayerStatsRepository is a mock implementation of PlayerStatsRepository
type MockPlayerStatsRepository struct {
	mock.Mock
}

func (m *MockPlayerStatsRepository) GetOrCreate(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlayerStats), args.Error(1)
}

func (m *MockPlayerStatsRepository) Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlayerStats), args.Error(1)
}

func (m *MockPlayerStatsRepository) Update(ctx context.Context, stats *entities.PlayerStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockGuildStatsRepository is a mock implementation of GuildStatsRepository
type MockGuildStatsRepository struct {
	mock.Mock
}

func (m *MockGuildStatsRepository) GetOrCreate(ctx context.Context) (*entities.GuildStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildStats), args.Error(1)
}

func (m *MockGuildStatsRepository) Get(ctx context.Context) (*entities.GuildStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildStats), args.Error(1)
}

func (m *MockGuildStatsRepository) Update(ctx context.Context, stats *entities.GuildStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockGuildUserWinRepository is a mock implementation of GuildUserWinRepository
type MockGuildUserWinRepository struct {
	mock.Mock
}

func (m *MockGuildUserWinRepository) RecordWin(ctx context.Context, discordID int64, displayName string) error {
	args := m.Called(ctx, discordID, displayName)
	return args.Error(0)
}

func (m *MockGuildUserWinRepository) Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GuildUserWin), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreate(ctx context.Context) (*entities.GuildSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) Update(ctx context.Context, settings *entities.GuildSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockCustomWordRepository is a mock implementation of CustomWordRepository
type MockCustomWordRepository struct {
	mock.Mock
}

func (m *MockCustomWordRepository) Add(ctx context.Context, word string, addedBy int64) (bool, error) {
	args := m.Called(ctx, word, addedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomWordRepository) Remove(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomWordRepository) WordsForLength(ctx context.Context, length int) ([]string, error) {
	args := m.Called(ctx, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCustomWordRepository) CountByLength(ctx context.Context) (map[int]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

// MockWordPool is a mock implementation of WordPool
type MockWordPool struct {
	mock.Mock
}

func (m *MockWordPool) Contains(word string) bool {
	args := m.Called(word)
	return args.Bool(0)
}

func (m *MockWordPool) AnswerCandidates(length int) []string {
	args := m.Called(length)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockWordPool) HasLength(length int) bool {
	args := m.Called(length)
	return args.Bool(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockTransactionalEventPublisher is a mock implementation of TransactionalEventPublisher
type MockTransactionalEventPublisher struct {
	mock.Mock
}

func (m *MockTransactionalEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockTransactionalEventPublisher) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionalEventPublisher) Discard() {
	m.Called()
}

// RecordingEventPublisher collects published events for assertions
type RecordingEventPublisher struct {
	Events []events.Event
}

func (p *RecordingEventPublisher) Publish(event events.Event) error {
	p.Events = append(p.Events, event)
	return nil
}

func (p *RecordingEventPublisher) Flush(ctx context.Context) error { return nil }

func (p *RecordingEventPublisher) Discard() { p.Events = nil }
