package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/designdynasty/site/backend/internal/model/chat"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content is required")
)

// Service holds widget conversations and their append-only transcripts.
// A send appends the user entry and its scripted reply under one lock,
// so the reply for message N is always ordered before message N+1.
type Service struct {
	mu            sync.RWMutex
	conversations map[string]chat.Conversation
	transcripts   map[string][]chat.Message
	responder     *Responder
}

// NewService bootstraps the in-memory chat service.
func NewService(responder *Responder) *Service {
	return &Service{
		conversations: make(map[string]chat.Conversation),
		transcripts:   make(map[string][]chat.Message),
		responder:     responder,
	}
}

// CreateConversation provisions a conversation opened by the greeting.
func (s *Service) CreateConversation(_ context.Context) (chat.Conversation, error) {
	conversation := chat.Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	greeting := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Content:        Greeting,
		IsUser:         false,
		CreatedAt:      conversation.CreatedAt,
	}

	s.mu.Lock()
	s.conversations[conversation.ID] = conversation
	s.transcripts[conversation.ID] = append(make([]chat.Message, 0, 16), greeting)
	s.mu.Unlock()

	return conversation, nil
}

// GetConversation retrieves a conversation by identifier.
func (s *Service) GetConversation(_ context.Context, id string) (chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conversation, ok := s.conversations[id]
	if !ok {
		return chat.Conversation{}, ErrConversationNotFound
	}
	return conversation, nil
}

// SendMessage appends the user message and its scripted reply to the
// transcript and returns both entries. Delivery timing (the widget's
// typing delay) is the transport's concern, not the transcript's.
func (s *Service) SendMessage(_ context.Context, conversationID, content string) (chat.Message, chat.Message, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, chat.Message{}, ErrEmptyMessage
	}

	now := time.Now().UTC()
	userMsg := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Content:        content,
		IsUser:         true,
		CreatedAt:      now,
	}
	replyMsg := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Content:        s.responder.Reply(content),
		IsUser:         false,
		CreatedAt:      now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return chat.Message{}, chat.Message{}, ErrConversationNotFound
	}

	s.transcripts[conversationID] = append(s.transcripts[conversationID], userMsg, replyMsg)
	return userMsg, replyMsg, nil
}

// Transcript returns a copy of the stored messages in append order.
func (s *Service) Transcript(_ context.Context, conversationID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.transcripts[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
