package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slovli/database"
	"slovli/domain/entities"
	"slovli/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// gameDB is a local struct for database mapping
type gameDB struct {
	GuildID    int64     `db:"guild_id"`
	Answer     string    `db:"answer"`
	WordLength int       `db:"word_length"`
	Attempts   []byte    `db:"attempts"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

// toDomain converts the database struct to the domain entity
func (g *gameDB) toDomain() (*entities.Game, error) {
	var attempts []entities.Attempt
	if err := json.Unmarshal(g.Attempts, &attempts); err != nil {
		return nil, fmt.Errorf("invalid attempts data for guild %d: %w", g.GuildID, err)
	}

	return &entities.Game{
		GuildID:    g.GuildID,
		Answer:     g.Answer,
		WordLength: g.WordLength,
		Attempts:   attempts,
		Status:     entities.GameStatus(g.Status),
		CreatedAt:  g.CreatedAt,
	}, nil
}

// gameRepository implements interfaces.GameRepository
type gameRepository struct {
	q       Queryable
	guildID int64
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB, guildID int64) interfaces.GameRepository {
	return &gameRepository{q: db.Pool, guildID: guildID}
}

// NewGameRepositoryScoped creates a new game repository with a transaction and guild scope
func NewGameRepositoryScoped(tx Queryable, guildID int64) interfaces.GameRepository {
	return &gameRepository{
		q:       tx,
		guildID: guildID,
	}
}

// LockGuild takes a transaction-scoped advisory lock on the guild ID so that
// concurrent game operations for the same guild execute one at a time. The
// lock is released automatically when the transaction commits or rolls back.
func (r *gameRepository) LockGuild(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to lock guild %d: %w", r.guildID, err)
	}
	return nil
}

// GetActive retrieves the in-progress game for the guild, or nil when there is none
func (r *gameRepository) GetActive(ctx context.Context) (*entities.Game, error) {
	query := `
		SELECT guild_id, answer, word_length, attempts, status, created_at
		FROM games
		WHERE guild_id = $1 AND status = $2
	`

	var dbGame gameDB
	err := r.q.QueryRow(ctx, query, r.guildID, string(entities.GameStatusInProgress)).Scan(
		&dbGame.GuildID,
		&dbGame.Answer,
		&dbGame.WordLength,
		&dbGame.Attempts,
		&dbGame.Status,
		&dbGame.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active game for guild %d: %w", r.guildID, err)
	}

	return dbGame.toDomain()
}

// Upsert creates the game row for the guild or overwrites an existing one
func (r *gameRepository) Upsert(ctx context.Context, game *entities.Game) error {
	attempts, err := json.Marshal(game.Attempts)
	if err != nil {
		return fmt.Errorf("failed to marshal attempts: %w", err)
	}

	query := `
		INSERT INTO games (guild_id, answer, word_length, attempts, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guild_id) DO UPDATE SET
			answer = EXCLUDED.answer,
			word_length = EXCLUDED.word_length,
			attempts = EXCLUDED.attempts,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at
	`

	_, err = r.q.Exec(ctx, query,
		r.guildID,
		game.Answer,
		game.WordLength,
		attempts,
		string(game.Status),
		game.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game for guild %d: %w", r.guildID, err)
	}

	game.GuildID = r.guildID
	return nil
}

// Delete removes the game row for the guild; deleting a missing row is not an error
func (r *gameRepository) Delete(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `DELETE FROM games WHERE guild_id = $1`, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to delete game for guild %d: %w", r.guildID, err)
	}
	return nil
}
