package events

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGameStarted   EventType = "game_started"
	EventTypeGameCompleted EventType = "game_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GameStartedEvent is emitted when a new puzzle is dealt to a guild
type GameStartedEvent struct {
	GuildID    int64 `json:"guild_id"`
	WordLength int   `json:"word_length"`
}

func (e GameStartedEvent) Type() EventType {
	return EventTypeGameStarted
}

// GameCompletedEvent is emitted on every terminal transition. WinnerID is
// zero for losses; a chat-level loss has no individual loser.
type GameCompletedEvent struct {
	GuildID      int64  `json:"guild_id"`
	WinnerID     int64  `json:"winner_id,omitempty"`
	Won          bool   `json:"won"`
	AttemptCount int    `json:"attempt_count"`
	WordLength   int    `json:"word_length"`
	Answer       string `json:"answer"`
}

func (e GameCompletedEvent) Type() EventType {
	return EventTypeGameCompleted
}
