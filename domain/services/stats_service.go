package services

import (
	"context"
	"fmt"

	"slovli/domain/entities"
	"slovli/domain/interfaces"
)

// statsService implements the StatsService interface. It is the only writer
// of player/guild aggregates and the leaderboard; every update is a
// read-modify-write inside the unit of work's transaction.
type statsService struct {
	playerStatsRepo  interfaces.PlayerStatsRepository
	guildStatsRepo   interfaces.GuildStatsRepository
	guildUserWinRepo interfaces.GuildUserWinRepository
}

// NewStatsService creates a new stats service bound to one unit of work
func NewStatsService(
	playerStatsRepo interfaces.PlayerStatsRepository,
	guildStatsRepo interfaces.GuildStatsRepository,
	guildUserWinRepo interfaces.GuildUserWinRepository,
) interfaces.StatsService {
	return &statsService{
		playerStatsRepo:  playerStatsRepo,
		guildStatsRepo:   guildStatsRepo,
		guildUserWinRepo: guildUserWinRepo,
	}
}

// ApplyPlayerResult folds a terminated game into one user's aggregate
func (s *statsService) ApplyPlayerResult(ctx context.Context, discordID int64, won bool, attemptCount int) error {
	stats, err := s.playerStatsRepo.GetOrCreate(ctx, discordID)
	if err != nil {
		return fmt.Errorf("failed to get player stats: %w", err)
	}

	if err := stats.ApplyResult(won, attemptCount); err != nil {
		return fmt.Errorf("failed to apply result for user %d: %w", discordID, err)
	}

	if err := s.playerStatsRepo.Update(ctx, stats); err != nil {
		return fmt.Errorf("failed to update player stats: %w", err)
	}
	return nil
}

// ApplyGuildResult folds a terminated game into the guild aggregate
func (s *statsService) ApplyGuildResult(ctx context.Context, won bool, attemptCount int) error {
	stats, err := s.guildStatsRepo.GetOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to get guild stats: %w", err)
	}

	if err := stats.ApplyResult(won, attemptCount); err != nil {
		return fmt.Errorf("failed to apply guild result: %w", err)
	}

	if err := s.guildStatsRepo.Update(ctx, stats); err != nil {
		return fmt.Errorf("failed to update guild stats: %w", err)
	}
	return nil
}

// RecordGuildWin upserts the winner's leaderboard row
func (s *statsService) RecordGuildWin(ctx context.Context, discordID int64, displayName string) error {
	if err := s.guildUserWinRepo.RecordWin(ctx, discordID, displayName); err != nil {
		return fmt.Errorf("failed to record guild win: %w", err)
	}
	return nil
}

// PlayerStats returns a user's aggregate, nil when they never played
func (s *statsService) PlayerStats(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	stats, err := s.playerStatsRepo.Get(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	return stats, nil
}

// GuildStats returns the guild aggregate, nil when nothing finished yet
func (s *statsService) GuildStats(ctx context.Context) (*entities.GuildStats, error) {
	stats, err := s.guildStatsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild stats: %w", err)
	}
	return stats, nil
}

// Leaderboard returns up to limit rows, wins descending then name ascending
func (s *statsService) Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error) {
	rows, err := s.guildUserWinRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return rows, nil
}
