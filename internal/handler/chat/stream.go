package chat

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/designdynasty/site/backend/pkg/utils"
)

// StreamResponse is one SSE frame of the chat stream.
type StreamResponse struct {
	Event          string `json:"event"`
	Content        string `json:"content,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	Finished       bool   `json:"finished,omitempty"`
	Error          string `json:"error,omitempty"`
}

// HandleStreamRequest answers one user message over Server-Sent Events:
// a start frame, the scripted reply after the configured delay, then an
// end frame. The delay wait is cancelled with the request context, so a
// closed tab never leaks the handler.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, conversationID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	userMsg, replyMsg, err := h.chatSvc.SendMessage(ctx, conversationID, userMessage)
	if err != nil {
		h.sendSSE(w, flusher, StreamResponse{
			Event:          "error",
			ConversationID: conversationID,
			Error:          err.Error(),
		})
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:          "start",
		ConversationID: conversationID,
		Content:        userMsg.Content,
	})

	if err := h.waitReplyDelay(ctx); err != nil {
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:          "reply",
		ConversationID: conversationID,
		Content:        replyMsg.Content,
	})

	h.sendSSE(w, flusher, StreamResponse{
		Event:          "end",
		ConversationID: conversationID,
		Finished:       true,
	})
	return nil
}

func (h *Handler) waitReplyDelay(ctx context.Context) error {
	if h.replyDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(h.replyDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sendSSE emits one frame. Start, reply and end frames carry their
// name as the SSE event type; error frames stay data-only so a bare
// EventSource onmessage listener still sees them.
func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, resp StreamResponse) {
	if resp.Event == "error" {
		utils.SendSSEChunk(w, flusher, resp)
		return
	}
	utils.SendSSEEvent(w, flusher, resp.Event, resp)
}
