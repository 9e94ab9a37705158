package entities

// OutcomeKind classifies the result of an accepted guess
type OutcomeKind string

const (
	OutcomeContinue OutcomeKind = "continue"
	OutcomeWon      OutcomeKind = "won"
	OutcomeLost     OutcomeKind = "lost"
)

// GuessOutcome is the structured result handed to the presentation layer
// after an accepted guess. The core never formats user-facing strings.
type GuessOutcome struct {
	Kind              OutcomeKind
	Marks             []Mark
	AttemptCount      int
	RemainingAttempts int
	// Answer is revealed on terminal outcomes only
	Answer string
	// History is the full attempt list including this guess
	History []Attempt
	// LetterStatuses merges the best-known mark per letter across attempts
	LetterStatuses map[rune]Mark
}

// StartResult reports a started game: the length to guess at and, when the
// start discarded an in-progress game, the answer that was thrown away.
type StartResult struct {
	WordLength     int
	PreviousAnswer string
}
