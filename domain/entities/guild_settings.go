package entities

import "fmt"

// GuildSettings represents per-guild configuration settings. They persist
// independent of any single game; changing the word length never touches an
// in-progress game.
type GuildSettings struct {
	GuildID    int64 `db:"guild_id"`
	WordLength int   `db:"word_length"`
}

// SetWordLength validates and sets the configured word length
func (gs *GuildSettings) SetWordLength(length int) error {
	if length < MinWordLength || length > MaxWordLength {
		return fmt.Errorf("%w: must be between %d and %d, got %d", ErrWrongLength, MinWordLength, MaxWordLength, length)
	}
	gs.WordLength = length
	return nil
}
