package repository

import (
	"context"
	"fmt"

	"slovli/database"
	"slovli/domain/entities"
	"slovli/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// guildSettingsRepository implements interfaces.GuildSettingsRepository
type guildSettingsRepository struct {
	q       Queryable
	guildID int64
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB, guildID int64) interfaces.GuildSettingsRepository {
	return &guildSettingsRepository{q: db.Pool, guildID: guildID}
}

// NewGuildSettingsRepositoryScoped creates a new guild settings repository with a transaction and guild scope
func NewGuildSettingsRepositoryScoped(tx Queryable, guildID int64) interfaces.GuildSettingsRepository {
	return &guildSettingsRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetOrCreate retrieves guild settings or creates default ones if not found
func (r *guildSettingsRepository) GetOrCreate(ctx context.Context) (*entities.GuildSettings, error) {
	query := `
		SELECT guild_id, word_length
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query, r.guildID).Scan(
		&settings.GuildID,
		&settings.WordLength,
	)
	if err == nil {
		return &settings, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", r.guildID, err)
	}

	insertQuery := `
		INSERT INTO guild_settings (guild_id, word_length)
		VALUES ($1, $2)
		RETURNING guild_id, word_length
	`

	err = r.q.QueryRow(ctx, insertQuery, r.guildID, entities.DefaultWordLength).Scan(
		&settings.GuildID,
		&settings.WordLength,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild settings for guild %d: %w", r.guildID, err)
	}

	return &settings, nil
}

// Update persists changed settings
func (r *guildSettingsRepository) Update(ctx context.Context, settings *entities.GuildSettings) error {
	query := `
		UPDATE guild_settings
		SET word_length = $2
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query, r.guildID, settings.WordLength)
	if err != nil {
		return fmt.Errorf("failed to update guild settings for guild %d: %w", r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild settings for guild %d not found", r.guildID)
	}
	return nil
}
