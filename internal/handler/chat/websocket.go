package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatservice "github.com/designdynasty/site/backend/internal/service/chat"
)

// WebSocketHandler carries the floating widget's live connection.
type WebSocketHandler struct {
	chatSvc    *chatservice.Service
	replyDelay time.Duration
	upgrader   websocket.Upgrader
}

// NewWebSocketHandler creates the widget WebSocket handler.
func NewWebSocketHandler(chatSvc *chatservice.Service, replyDelay time.Duration) *WebSocketHandler {
	return &WebSocketHandler{
		chatSvc:    chatSvc,
		replyDelay: replyDelay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes registers the widget WebSocket route.
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/chat/ws/{conversationID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type outgoingMessage struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId,omitempty"`
	Content        string `json:"content,omitempty"`
	IsUser         bool   `json:"isUser,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	if _, err := h.chatSvc.GetConversation(r.Context(), conversationID); err != nil {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[chat-ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[chat-ws] connection opened for conversation=%s", conversationID)
	h.readLoop(r, conn, conversationID)
	log.Printf("[chat-ws] connection closed for conversation=%s", conversationID)
}

// readLoop processes inbound user messages until the peer disconnects.
// Replies go out after the configured delay to mimic the widget's typing
// indicator; the transcript itself is settled synchronously per send.
func (h *WebSocketHandler) readLoop(r *http.Request, conn *websocket.Conn, conversationID string) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[chat-ws] read error: %v", err)
			}
			return
		}

		var inbound inboundMessage
		if err := json.Unmarshal(raw, &inbound); err != nil {
			h.writeError(conn, conversationID, "invalid message payload")
			continue
		}
		if inbound.Type != "message" {
			h.writeError(conn, conversationID, "unsupported message type")
			continue
		}

		userMsg, replyMsg, err := h.chatSvc.SendMessage(r.Context(), conversationID, inbound.Content)
		if err != nil {
			h.writeError(conn, conversationID, err.Error())
			continue
		}

		h.write(conn, outgoingMessage{
			Type:           "ack",
			ConversationID: conversationID,
			Content:        userMsg.Content,
			IsUser:         true,
			Timestamp:      userMsg.CreatedAt.UnixMilli(),
		})

		if h.replyDelay > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(h.replyDelay):
			}
		}

		h.write(conn, outgoingMessage{
			Type:           "reply",
			ConversationID: conversationID,
			Content:        replyMsg.Content,
			Timestamp:      replyMsg.CreatedAt.UnixMilli(),
		})
	}
}

func (h *WebSocketHandler) write(conn *websocket.Conn, msg outgoingMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[chat-ws] write failed: %v", err)
	}
}

func (h *WebSocketHandler) writeError(conn *websocket.Conn, conversationID, message string) {
	h.write(conn, outgoingMessage{
		Type:           "error",
		ConversationID: conversationID,
		Content:        message,
		Timestamp:      time.Now().UnixMilli(),
	})
}
