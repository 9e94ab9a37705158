package entities

import (
	"fmt"
	"time"
)

// Game length and attempt limits. Lengths outside this range have no
// dictionary coverage.
const (
	MaxAttempts       = 6
	MinWordLength     = 4
	MaxWordLength     = 9
	DefaultWordLength = 5
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusWon        GameStatus = "WON"
	GameStatusLost       GameStatus = "LOST"
)

// Attempt is one accepted guess: the normalized word, its per-letter marks
// and the Discord ID of the member who submitted it.
type Attempt struct {
	Word      string `json:"word"`
	Marks     []Mark `json:"marks"`
	GuesserID int64  `json:"guesser_id"`
}

// Game represents the single active puzzle of a guild. At most one row
// exists per guild; terminal games are deleted after stats are applied,
// never archived.
type Game struct {
	GuildID    int64      `db:"guild_id"`
	Answer     string     `db:"answer"`
	WordLength int        `db:"word_length"`
	Attempts   []Attempt  `db:"attempts"`
	Status     GameStatus `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
}

// NewGame creates an in-progress game with an empty attempt history
func NewGame(guildID int64, answer string, wordLength int) (*Game, error) {
	if guildID <= 0 {
		return nil, fmt.Errorf("guildID must be greater than 0, got %d", guildID)
	}
	if wordLength < MinWordLength || wordLength > MaxWordLength {
		return nil, fmt.Errorf("word length must be between %d and %d, got %d", MinWordLength, MaxWordLength, wordLength)
	}
	if len([]rune(answer)) != wordLength {
		return nil, fmt.Errorf("answer %q does not match word length %d", answer, wordLength)
	}

	return &Game{
		GuildID:    guildID,
		Answer:     answer,
		WordLength: wordLength,
		Attempts:   []Attempt{},
		Status:     GameStatusInProgress,
		CreatedAt:  time.Now(),
	}, nil
}

// IsInProgress reports whether the game still accepts guesses
func (g *Game) IsInProgress() bool {
	return g.Status == GameStatusInProgress
}

// AttemptCount returns the number of accepted guesses so far
func (g *Game) AttemptCount() int {
	return len(g.Attempts)
}

// RemainingAttempts returns how many guesses are left before exhaustion
func (g *Game) RemainingAttempts() int {
	return MaxAttempts - len(g.Attempts)
}

// HasGuessed reports whether the normalized word was already tried this game
func (g *Game) HasGuessed(word string) bool {
	for _, a := range g.Attempts {
		if a.Word == word {
			return true
		}
	}
	return false
}

// RecordAttempt appends an accepted guess and resolves the resulting status.
// The caller must have validated the guess first.
func (g *Game) RecordAttempt(word string, marks []Mark, guesserID int64) GameStatus {
	g.Attempts = append(g.Attempts, Attempt{Word: word, Marks: marks, GuesserID: guesserID})

	switch {
	case word == g.Answer:
		g.Status = GameStatusWon
	case len(g.Attempts) >= MaxAttempts:
		g.Status = GameStatusLost
	}
	return g.Status
}
