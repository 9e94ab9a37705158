package testhelpers

import (
	"context"

	"slovli/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) ApplyPlayerResult(ctx context.Context, discordID int64, won bool, attemptCount int) error {
	args := m.Called(ctx, discordID, won, attemptCount)
	return args.Error(0)
}

func (m *MockStatsService) ApplyGuildResult(ctx context.Context, won bool, attemptCount int) error {
	args := m.Called(ctx, won, attemptCount)
	return args.Error(0)
}

func (m *MockStatsService) RecordGuildWin(ctx context.Context, discordID int64, displayName string) error {
	args := m.Called(ctx, discordID, displayName)
	return args.Error(0)
}

func (m *MockStatsService) PlayerStats(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlayerStats), args.Error(1)
}

func (m *MockStatsService) GuildStats(ctx context.Context) (*entities.GuildStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildStats), args.Error(1)
}

func (m *MockStatsService) Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GuildUserWin), args.Error(1)
}
