package repository

import (
	"context"
	"fmt"

	"slovli/database"
	"slovli/domain/entities"
	"slovli/domain/interfaces"
)

// guildUserWinRepository implements interfaces.GuildUserWinRepository
type guildUserWinRepository struct {
	q       Queryable
	guildID int64
}

// NewGuildUserWinRepository creates a new guild user win repository
func NewGuildUserWinRepository(db *database.DB, guildID int64) interfaces.GuildUserWinRepository {
	return &guildUserWinRepository{q: db.Pool, guildID: guildID}
}

// NewGuildUserWinRepositoryScoped creates a new guild user win repository with a transaction and guild scope
func NewGuildUserWinRepositoryScoped(tx Queryable, guildID int64) interfaces.GuildUserWinRepository {
	return &guildUserWinRepository{
		q:       tx,
		guildID: guildID,
	}
}

// RecordWin increments the win counter for a user in the guild, creating the
// row on first win. The stored display name is overwritten with the
// last-seen value so the leaderboard tracks renames.
func (r *guildUserWinRepository) RecordWin(ctx context.Context, discordID int64, displayName string) error {
	query := `
		INSERT INTO guild_user_wins (guild_id, discord_id, display_name, wins)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (guild_id, discord_id) DO UPDATE SET
			wins = guild_user_wins.wins + 1,
			display_name = EXCLUDED.display_name
	`

	_, err := r.q.Exec(ctx, query, r.guildID, discordID, displayName)
	if err != nil {
		return fmt.Errorf("failed to record win for user %d in guild %d: %w", discordID, r.guildID, err)
	}
	return nil
}

// Leaderboard returns rows for the guild ordered by wins descending, ties
// broken by display name ascending
func (r *guildUserWinRepository) Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error) {
	query := `
		SELECT guild_id, discord_id, display_name, wins
		FROM guild_user_wins
		WHERE guild_id = $1
		ORDER BY wins DESC, display_name ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, r.guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard for guild %d: %w", r.guildID, err)
	}
	defer rows.Close()

	var entries []*entities.GuildUserWin
	for rows.Next() {
		var entry entities.GuildUserWin
		if err := rows.Scan(&entry.GuildID, &entry.DiscordID, &entry.DisplayName, &entry.Wins); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard rows: %w", err)
	}

	return entries, nil
}
