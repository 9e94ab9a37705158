package interfaces

import (
	"context"

	"slovli/domain/entities"
	"slovli/domain/events"
)

// GameRepository defines data access for the single active game of a guild
type GameRepository interface {
	// LockGuild serializes all game operations for the repository's guild
	// for the lifetime of the surrounding transaction. Must be called before
	// any read-validate-mutate sequence.
	LockGuild(ctx context.Context) error

	// GetActive retrieves the in-progress game, or nil when there is none
	GetActive(ctx context.Context) (*entities.Game, error)

	// Upsert creates the game row or overwrites an existing one
	Upsert(ctx context.Context, game *entities.Game) error

	// Delete removes the game row; deleting a missing row is not an error
	Delete(ctx context.Context) error
}

// PlayerStatsRepository defines data access for per-user aggregates
type PlayerStatsRepository interface {
	// GetOrCreate retrieves stats for a user, creating a zeroed row if absent
	GetOrCreate(ctx context.Context, discordID int64) (*entities.PlayerStats, error)

	// Get retrieves stats for a user, or nil when the user never finished a game
	Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error)

	// Update persists mutated stats
	Update(ctx context.Context, stats *entities.PlayerStats) error
}

// GuildStatsRepository defines data access for guild-level aggregates
type GuildStatsRepository interface {
	GetOrCreate(ctx context.Context) (*entities.GuildStats, error)
	Get(ctx context.Context) (*entities.GuildStats, error)
	Update(ctx context.Context, stats *entities.GuildStats) error
}

// GuildUserWinRepository defines data access for the per-guild leaderboard
type GuildUserWinRepository interface {
	// RecordWin upserts a row, incrementing wins and overwriting the stored
	// display name with the last-seen value
	RecordWin(ctx context.Context, discordID int64, displayName string) error

	// Leaderboard returns rows ordered by wins descending then name ascending
	Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error)
}

// GuildSettingsRepository defines data access for per-guild configuration
type GuildSettingsRepository interface {
	// GetOrCreate retrieves guild settings or creates defaults if not found
	GetOrCreate(ctx context.Context) (*entities.GuildSettings, error)

	// Update persists changed settings
	Update(ctx context.Context, settings *entities.GuildSettings) error
}

// CustomWordRepository defines data access for admin-added dictionary words
type CustomWordRepository interface {
	// Add inserts a word; returns false when it already exists for its length
	Add(ctx context.Context, word string, addedBy int64) (bool, error)

	// Remove deletes a word; returns false when it was not present
	Remove(ctx context.Context, word string) (bool, error)

	// WordsForLength returns all custom words of the given length, sorted
	WordsForLength(ctx context.Context, length int) ([]string, error)

	// CountByLength returns per-length totals for lengths that have words
	CountByLength(ctx context.Context) (map[int]int64, error)
}

// WordPool supplies the embedded base dictionary: the valid-guess set and
// the answer candidates per word length. Implementations are immutable and
// safe for concurrent use.
type WordPool interface {
	// Contains reports whether the normalized word is a valid guess
	Contains(word string) bool

	// AnswerCandidates returns the answer pool for a length; empty when the
	// length has no dictionary coverage
	AnswerCandidates(length int) []string

	// HasLength reports whether the base dictionary covers a length
	HasLength(length int) bool
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding
// transaction resolves
type TransactionalEventPublisher interface {
	EventPublisher
	Flush(ctx context.Context) error
	Discard()
}

// UnitOfWork defines transactional repository access scoped to one guild
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered events
	Commit() error

	// Rollback rolls back the transaction and discards buffered events
	Rollback() error

	// Repository getters
	GameRepository() GameRepository
	PlayerStatsRepository() PlayerStatsRepository
	GuildStatsRepository() GuildStatsRepository
	GuildUserWinRepository() GuildUserWinRepository
	GuildSettingsRepository() GuildSettingsRepository
	CustomWordRepository() CustomWordRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates UnitOfWork instances scoped to a specific guild
type UnitOfWorkFactory interface {
	CreateForGuild(guildID int64) UnitOfWork
}
