package ws

import (
	"encoding/json"
)

// MessageType represents the kinds of messages the websocket layer carries.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
