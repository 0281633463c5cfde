package models

import (
	"time"
)

// ChatMessage is one message between two users. Messages are append-only;
// neither side owns the exchange.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Emoji      string    `json:"emoji,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Between reports whether the message links the two given users,
// in either direction.
func (m *ChatMessage) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}
