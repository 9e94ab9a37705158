package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game, err := NewGame(1, "ПЕСНЯ", 5)
	require.NoError(t, err)
	assert.Equal(t, GameStatusInProgress, game.Status)
	assert.Equal(t, 5, game.WordLength)
	assert.Empty(t, game.Attempts)
	assert.Equal(t, MaxAttempts, game.RemainingAttempts())

	_, err = NewGame(0, "ПЕСНЯ", 5)
	assert.Error(t, err)

	_, err = NewGame(1, "ПЕСНЯ", 6)
	assert.Error(t, err)

	_, err = NewGame(1, "ДОМ", 3)
	assert.Error(t, err)
}

func TestGame_RecordAttempt(t *testing.T) {
	game, err := NewGame(1, "ПЕСНЯ", 5)
	require.NoError(t, err)

	miss := []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}

	status := game.RecordAttempt("ГОРКА", miss, 7)
	assert.Equal(t, GameStatusInProgress, status)
	assert.Equal(t, 1, game.AttemptCount())
	assert.Equal(t, 5, game.RemainingAttempts())
	assert.True(t, game.HasGuessed("ГОРКА"))
	assert.False(t, game.HasGuessed("ПЕСНЯ"))

	hit := []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}
	status = game.RecordAttempt("ПЕСНЯ", hit, 9)
	assert.Equal(t, GameStatusWon, status)
	assert.False(t, game.IsInProgress())
	assert.Equal(t, int64(9), game.Attempts[1].GuesserID)
}

func TestGame_LossOnExhaustion(t *testing.T) {
	game, err := NewGame(1, "ПЕСНЯ", 5)
	require.NoError(t, err)

	miss := []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}
	words := []string{"ГОРКА", "ВАГОН", "ЛОДКА", "МЕТРО", "ЗЕБРА", "ТОЧКА"}

	var status GameStatus
	for _, w := range words {
		status = game.RecordAttempt(w, miss, 7)
	}

	assert.Equal(t, GameStatusLost, status)
	assert.Equal(t, 0, game.RemainingAttempts())
	assert.Equal(t, MaxAttempts, game.AttemptCount())
}

func TestGame_WinOnLastAttempt(t *testing.T) {
	game, err := NewGame(1, "ПЕСНЯ", 5)
	require.NoError(t, err)

	miss := []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}
	for _, w := range []string{"ГОРКА", "ВАГОН", "ЛОДКА", "МЕТРО", "ЗЕБРА"} {
		game.RecordAttempt(w, miss, 7)
	}

	hit := []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}
	status := game.RecordAttempt("ПЕСНЯ", hit, 7)

	// The answer on the sixth guess wins; exhaustion only applies to misses
	assert.Equal(t, GameStatusWon, status)
}

func TestMark_Rank(t *testing.T) {
	assert.Greater(t, MarkCorrect.Rank(), MarkPresent.Rank())
	assert.Greater(t, MarkPresent.Rank(), MarkAbsent.Rank())
}
