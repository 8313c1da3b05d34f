package ws

import "encoding/json"

// MessageType represents the type of an inbound WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgSetUsername MessageType = "set_username"
	MsgCreateRoom  MessageType = "create_room"
	MsgJoinRoom    MessageType = "join_room"
	MsgToggleReady MessageType = "toggle_ready"
	MsgStartGame   MessageType = "start_game"
	MsgSubmitWord  MessageType = "submit_word"
	MsgSendMessage MessageType = "send_message"
	MsgLeaveRoom   MessageType = "leave_room"
)

// ClientMessage is the envelope every inbound frame uses. Payload stays raw
// until the type is known.
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SubmitWordPayload is the payload for submit_word
type SubmitWordPayload struct {
	RoomID string `json:"roomId"`
	Word   string `json:"word"`
}

// SendMessagePayload is the payload for send_message
type SendMessagePayload struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

// stringPayload decodes payloads that are either a bare JSON string or an
// object with a single well-known key, e.g. "room-abc123" and
// {"roomId": "room-abc123"} both work.
func stringPayload(raw json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err == nil {
		return m[key]
	}
	return ""
}
