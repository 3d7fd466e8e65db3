package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatservice "github.com/designdynasty/site/backend/internal/service/chat"
)

func setupWebSocketServer(t *testing.T) (*httptest.Server, *chatservice.Service) {
	t.Helper()

	chatSvc := chatservice.NewService(chatservice.NewResponder(chatservice.DefaultRules(), chatservice.DefaultReply))
	wsHandler := NewWebSocketHandler(chatSvc, 0)

	r := chi.NewRouter()
	wsHandler.RegisterWebSocketRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatSvc
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestWebSocketAckThenReply(t *testing.T) {
	srv, chatSvc := setupWebSocketServer(t)

	conversation, err := chatSvc.CreateConversation(context.Background())
	if err != nil {
		t.Fatalf("CreateConversation err: %v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/chat/ws/"+conversation.ID), nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(inboundMessage{Type: "message", Content: "what's your pricing?"}); err != nil {
		t.Fatalf("write err: %v", err)
	}

	var ack outgoingMessage
	if err := conn.ReadJSON(&ack); err != nil {
		t.Fatalf("read ack err: %v", err)
	}
	if ack.Type != "ack" || !ack.IsUser || ack.Content != "what's your pricing?" {
		t.Fatalf("unexpected ack: %+v", ack)
	}

	var reply outgoingMessage
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply err: %v", err)
	}
	if reply.Type != "reply" || !strings.Contains(reply.Content, "$999") {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestWebSocketUnknownConversationRejected(t *testing.T) {
	srv, _ := setupWebSocketServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/chat/ws/missing"), nil)
	if err == nil {
		t.Fatal("expected handshake to fail for unknown conversation")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}
}

func TestWebSocketUnsupportedTypeAnswersError(t *testing.T) {
	srv, chatSvc := setupWebSocketServer(t)

	conversation, _ := chatSvc.CreateConversation(context.Background())
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/chat/ws/"+conversation.ID), nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(inboundMessage{Type: "config", Content: "x"}); err != nil {
		t.Fatalf("write err: %v", err)
	}

	var msg outgoingMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read err: %v", err)
	}
	if msg.Type != "error" {
		t.Fatalf("expected error frame, got %+v", msg)
	}
}
