package interfaces

import (
	"context"

	"slovli/domain/entities"
)

// GameSessionService orchestrates the per-guild game state machine: it
// validates guesses, scores them, moves the game between states and applies
// statistics on terminal transitions.
type GameSessionService interface {
	// StartNew deals a fresh puzzle at the guild's configured word length.
	// Any in-progress game is discarded without stats credit.
	StartNew(ctx context.Context) (*entities.StartResult, error)

	// SubmitGuess validates and scores one guess. Validation failures are
	// the typed errors of the entities package.
	SubmitGuess(ctx context.Context, guesserID int64, displayName, rawText string) (*entities.GuessOutcome, error)

	// GiveUp abandons the active game and reveals the answer. No statistics
	// are recorded.
	GiveUp(ctx context.Context) (string, error)

	// ActiveGame returns the in-progress game, or nil
	ActiveGame(ctx context.Context) (*entities.Game, error)
}

// StatsService is the single writer of player/guild aggregates and the
// leaderboard. The session service invokes it at terminal transitions; the
// bot layer reads through it.
type StatsService interface {
	// ApplyPlayerResult folds a terminated game into one user's aggregate.
	// Only winners receive a per-user update on guild losses.
	ApplyPlayerResult(ctx context.Context, discordID int64, won bool, attemptCount int) error

	// ApplyGuildResult folds a terminated game into the guild aggregate;
	// called exactly once per terminated game regardless of outcome.
	ApplyGuildResult(ctx context.Context, won bool, attemptCount int) error

	// RecordGuildWin upserts the winner's leaderboard row
	RecordGuildWin(ctx context.Context, discordID int64, displayName string) error

	// PlayerStats returns a user's aggregate, nil when they never played
	PlayerStats(ctx context.Context, discordID int64) (*entities.PlayerStats, error)

	// GuildStats returns the guild aggregate, nil when nothing finished yet
	GuildStats(ctx context.Context) (*entities.GuildStats, error)

	// Leaderboard returns up to limit rows, wins descending then name ascending
	Leaderboard(ctx context.Context, limit int) ([]*entities.GuildUserWin, error)
}

// GuildSettingsService manages per-guild configuration
type GuildSettingsService interface {
	GetOrCreateSettings(ctx context.Context) (*entities.GuildSettings, error)
	UpdateWordLength(ctx context.Context, length int) error
}

// DictionaryService manages the custom-word supplement to the base pool
type DictionaryService interface {
	// AddWord normalizes and inserts a custom word. Returns the normalized
	// form; entities.ErrInvalidAlphabet / ErrWrongLength on bad input.
	AddWord(ctx context.Context, rawWord string, addedBy int64) (string, error)

	// RemoveWord removes a custom word; refuses base-dictionary words
	RemoveWord(ctx context.Context, rawWord string) (string, error)

	// CheckWord reports where a word lives: base pool, custom pool, or neither
	CheckWord(ctx context.Context, rawWord string) (inBase, inCustom bool, normalized string, err error)

	// Counts returns custom-word totals per length
	Counts(ctx context.Context) (map[int]int64, error)
}
