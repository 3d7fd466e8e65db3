package chat

import "time"

// Conversation captures one transient widget conversation.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
