package services

import (
	"strings"

	"slovli/domain/entities"
)

// NormalizeWord canonicalizes raw guess text: uppercase, fold Ё into Е and
// strip everything outside А-Я. Scoring and storage correctness depend on
// this representation, so it lives with the engine rather than the bot.
func NormalizeWord(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	upper = strings.ReplaceAll(upper, "Ё", "Е")

	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if r >= 'А' && r <= 'Я' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsAlphabetic reports whether the word consists only of А-Я letters
func IsAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'А' || r > 'Я' {
			return false
		}
	}
	return true
}

// ScoreGuess evaluates a guess against the answer with the two-pass
// algorithm. Pass one consumes exact matches from the answer's letter
// counts; pass two grants present marks only while unconsumed occurrences
// remain, so duplicated guess letters never over-report.
func ScoreGuess(guess, answer string) []entities.Mark {
	guessRunes := []rune(guess)
	answerRunes := []rune(answer)
	n := len(answerRunes)

	marks := make([]entities.Mark, n)
	remaining := make(map[rune]int, n)
	for _, r := range answerRunes {
		remaining[r]++
	}

	for i := 0; i < n; i++ {
		if guessRunes[i] == answerRunes[i] {
			marks[i] = entities.MarkCorrect
			remaining[guessRunes[i]]--
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == entities.MarkCorrect {
			continue
		}
		if remaining[guessRunes[i]] > 0 {
			marks[i] = entities.MarkPresent
			remaining[guessRunes[i]]--
		} else {
			marks[i] = entities.MarkAbsent
		}
	}

	return marks
}

// AggregateLetterMarks merges the best-known mark per letter across all
// attempts, rank order correct > present > absent. Used for the keyboard
// hint the bot renders under the board.
func AggregateLetterMarks(attempts []entities.Attempt) map[rune]entities.Mark {
	best := make(map[rune]entities.Mark)
	for _, attempt := range attempts {
		for i, r := range []rune(attempt.Word) {
			if i >= len(attempt.Marks) {
				break
			}
			m := attempt.Marks[i]
			if prev, ok := best[r]; !ok || m.Rank() > prev.Rank() {
				best[r] = m
			}
		}
	}
	return best
}
