package domain

import "time"

// EventType represents the type of an outbound event
type EventType string

const (
	EventUsernameSet EventType = "username_set"
	EventYourID      EventType = "your_id"
	EventRoomCreated EventType = "room_created"
	EventRoomUpdate  EventType = "room_update"
	EventRoomsUpdate EventType = "rooms_update"
	EventGameStarted EventType = "game_started"
	EventRoundEnd    EventType = "round_end"
	EventWordResult  EventType = "word_result"
	EventGameOver    EventType = "game_over"
	EventGameReset   EventType = "game_reset"
	EventRoomClosed  EventType = "room_closed"
	EventNewMessage  EventType = "new_message"
	EventErrorMsg    EventType = "error_msg"
)

// Event is the envelope every outbound message uses
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new outbound event
func NewEvent(eventType EventType, payload interface{}) *Event {
	return &Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for different events

// RoomStatePayload is broadcast as room_update and game_reset
type RoomStatePayload struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Players []PlayerState `json:"players"`
	HostID  string        `json:"host"`
}

// RoomSummary is one entry of the lobby-wide rooms_update broadcast
type RoomSummary struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Players       []PlayerState `json:"players"`
	IsGameStarted bool          `json:"isGameStarted"`
	CurrentRound  int           `json:"currentRound"`
	TotalRounds   int           `json:"totalRounds"`
}

// GameStatePayload mirrors the game state a client renders
type GameStatePayload struct {
	Round       int            `json:"round"`
	MaxRounds   int            `json:"maxRounds"`
	Scores      map[string]int `json:"scores"`
	UsedWords   []string       `json:"usedWords"`
	FirstLetter string         `json:"currentFirstLetter"`
	LastLetter  string         `json:"currentLastLetter"`
}

// RoundPayload decorates the game state for game_started and round_end
type RoundPayload struct {
	GameStatePayload
	RoundTime    int           `json:"roundTime"`
	Players      []PlayerState `json:"players"`
	CurrentRound int           `json:"currentRound"`
}

// SubmissionResult is broadcast as word_result after every submission,
// accepted or not. Valid reflects the structural check only; Points is zero
// unless the dictionary accepted the word as well. RoundOver is always
// false: rounds end on the timer, never on a submission.
type SubmissionResult struct {
	Username     string         `json:"username"`
	Word         string         `json:"word"`
	Valid        bool           `json:"valid"`
	Points       int            `json:"points"`
	Round        int            `json:"round"`
	RoundOver    bool           `json:"roundOver"`
	GameOver     bool           `json:"gameOver"`
	Scores       map[string]int `json:"scores"`
	NextLetters  [2]string      `json:"nextLetters"`
	Players      []PlayerState  `json:"players"`
	CurrentRound int            `json:"currentRound"`
}

// ChatMessage is broadcast as new_message
type ChatMessage struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}
