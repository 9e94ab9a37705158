package repository

import (
	"context"
	"fmt"

	"slovli/database"
	"slovli/domain/entities"
	"slovli/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// guildStatsRepository implements interfaces.GuildStatsRepository
type guildStatsRepository struct {
	q       Queryable
	guildID int64
}

// NewGuildStatsRepository creates a new guild stats repository
func NewGuildStatsRepository(db *database.DB, guildID int64) interfaces.GuildStatsRepository {
	return &guildStatsRepository{q: db.Pool, guildID: guildID}
}

// NewGuildStatsRepositoryScoped creates a new guild stats repository with a transaction and guild scope
func NewGuildStatsRepositoryScoped(tx Queryable, guildID int64) interfaces.GuildStatsRepository {
	return &guildStatsRepository{
		q:       tx,
		guildID: guildID,
	}
}

const guildStatsColumns = `guild_id, played, wins, current_streak, max_streak, attempt_dist`

func scanGuildStats(row pgx.Row) (*entities.GuildStats, error) {
	var stats entities.GuildStats
	err := row.Scan(
		&stats.GuildID,
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

// GetOrCreate retrieves stats for the guild, creating a zeroed row if absent
func (r *guildStatsRepository) GetOrCreate(ctx context.Context) (*entities.GuildStats, error) {
	query := `
		INSERT INTO guild_stats (guild_id)
		VALUES ($1)
		ON CONFLICT (guild_id) DO UPDATE SET guild_id = EXCLUDED.guild_id
		RETURNING ` + guildStatsColumns

	stats, err := scanGuildStats(r.q.QueryRow(ctx, query, r.guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild stats for guild %d: %w", r.guildID, err)
	}
	return stats, nil
}

// Get retrieves stats for the guild, or nil when no game has finished there
func (r *guildStatsRepository) Get(ctx context.Context) (*entities.GuildStats, error) {
	query := `SELECT ` + guildStatsColumns + ` FROM guild_stats WHERE guild_id = $1`

	stats, err := scanGuildStats(r.q.QueryRow(ctx, query, r.guildID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild stats for guild %d: %w", r.guildID, err)
	}
	return stats, nil
}

// Update persists mutated stats
func (r *guildStatsRepository) Update(ctx context.Context, stats *entities.GuildStats) error {
	query := `
		UPDATE guild_stats
		SET played = $2,
		    wins = $3,
		    current_streak = $4,
		    max_streak = $5,
		    attempt_dist = $6
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		r.guildID,
		stats.Played,
		stats.Wins,
		stats.CurrentStreak,
		stats.MaxStreak,
		stats.AttemptDist,
	)
	if err != nil {
		return fmt.Errorf("failed to update guild stats for guild %d: %w", r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild stats for guild %d not found", r.guildID)
	}
	return nil
}
