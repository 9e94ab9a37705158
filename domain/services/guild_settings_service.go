package services

import (
	"context"
	"fmt"

	"slovli/domain/entities"
	"slovli/domain/interfaces"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	settingsRepo interfaces.GuildSettingsRepository
	pool         interfaces.WordPool
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(settingsRepo interfaces.GuildSettingsRepository, pool interfaces.WordPool) interfaces.GuildSettingsService {
	return &guildSettingsService{
		settingsRepo: settingsRepo,
		pool:         pool,
	}
}

// GetOrCreateSettings retrieves guild settings or creates defaults
func (s *guildSettingsService) GetOrCreateSettings(ctx context.Context) (*entities.GuildSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild settings: %w", err)
	}
	return settings, nil
}

// UpdateWordLength validates the length against the dictionary and persists
// it. The active game, if any, keeps its own length until it terminates.
func (s *guildSettingsService) UpdateWordLength(ctx context.Context, length int) error {
	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	if err := settings.SetWordLength(length); err != nil {
		return err
	}
	if !s.pool.HasLength(length) {
		return entities.ErrEmptyAnswerPool
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}
	return nil
}
