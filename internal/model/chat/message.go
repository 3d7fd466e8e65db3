package chat

import "time"

// Message is one transcript entry. Transcripts are append-only within a
// conversation and held in memory only.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Content        string    `json:"content"`
	IsUser         bool      `json:"isUser"`
	CreatedAt      time.Time `json:"createdAt"`
}
