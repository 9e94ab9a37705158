package repository

import (
	"context"
	"fmt"

	"slovli/database"
	"slovli/domain/entities"
	"slovli/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// playerStatsRepository implements interfaces.PlayerStatsRepository
type playerStatsRepository struct {
	q Queryable
}

// NewPlayerStatsRepository creates a new player stats repository
func NewPlayerStatsRepository(db *database.DB) interfaces.PlayerStatsRepository {
	return &playerStatsRepository{q: db.Pool}
}

// NewPlayerStatsRepositoryWithTx creates a new player stats repository with a transaction
func NewPlayerStatsRepositoryWithTx(tx Queryable) interfaces.PlayerStatsRepository {
	return &playerStatsRepository{q: tx}
}

const playerStatsColumns = `discord_id, played, wins, current_streak, max_streak, attempt_dist`

func scanPlayerStats(row pgx.Row) (*entities.PlayerStats, error) {
	var stats entities.PlayerStats
	err := row.Scan(
		&stats.DiscordID,
		&stats.Played,
		&stats.Wins,
		&stats.CurrentStreak,
		&stats.MaxStreak,
		&stats.AttemptDist,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetOrCreate retrieves stats for a user, creating a zeroed row if absent
func (r *playerStatsRepository) GetOrCreate(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	query := `
		INSERT INTO player_stats (discord_id)
		VALUES ($1)
		ON CONFLICT (discord_id) DO UPDATE SET discord_id = EXCLUDED.discord_id
		RETURNING ` + playerStatsColumns

	stats, err := scanPlayerStats(r.q.QueryRow(ctx, query, discordID))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player stats for user %d: %w", discordID, err)
	}
	return stats, nil
}

// Get retrieves stats for a user, or nil when the user never finished a game
func (r *playerStatsRepository) Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	query := `SELECT ` + playerStatsColumns + ` FROM player_stats WHERE discord_id = $1`

	stats, err := scanPlayerStats(r.q.QueryRow(ctx, query, discordID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats for user %d: %w", discordID, err)
	}
	return stats, nil
}

// Update persists mutated stats
func (r *playerStatsRepository) Update(ctx context.Context, stats *entities.PlayerStats) error {
	query := `
		UPDATE player_stats
		SET played = $2,
		    wins = $3,
		    current_streak = $4,
		    max_streak = $5,
		    attempt_dist = $6
		WHERE discord_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		stats.DiscordID,
		stats.Played,
		stats.Wins,
		stats.CurrentStreak,
		stats.MaxStreak,
		stats.AttemptDist,
	)
	if err != nil {
		return fmt.Errorf("failed to update player stats for user %d: %w", stats.DiscordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("player stats for user %d not found", stats.DiscordID)
	}
	return nil
}
