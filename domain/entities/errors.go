package entities

import "errors"

// Expected, recoverable game conditions. The session service returns these
// as typed results; the bot layer decides wording. Anything else that comes
// out of the service is a system failure.
var (
	ErrNoActiveGame    = errors.New("no active game in this chat")
	ErrWrongLength     = errors.New("guess has the wrong length")
	ErrInvalidAlphabet = errors.New("guess contains letters outside the alphabet")
	ErrNotInDictionary = errors.New("guess is not in the dictionary")
	ErrAlreadyGuessed  = errors.New("word was already tried this game")
	ErrEmptyAnswerPool = errors.New("no answer candidates for this word length")

	// Dictionary management conditions
	ErrWordExists = errors.New("word already in the dictionary")
)
