package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/mrhakimov/news/internal/chat"
	"github.com/mrhakimov/news/internal/model"
	"github.com/mrhakimov/news/pkg/workflow"
)

type WorkflowRunner interface {
	Run(input, sessionID string) (*workflow.Reply, error)
}

type ChatHandler struct {
	runner WorkflowRunner
}

func NewChatHandler(runner WorkflowRunner) *ChatHandler {
	return &ChatHandler{runner: runner}
}

// HandleChat forwards the latest user message to the workflow service and
// returns the unwrapped assistant reply. Prior messages ride along in the
// request for shape compatibility; the workflow keeps its own conversation
// state keyed by session id.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'messages' field in request body"})
		return
	}

	latest := req.Messages[len(req.Messages)-1]
	if strings.TrimSpace(latest.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	reply, err := h.runner.Run(latest.Content, req.SessionID)
	if err != nil {
		slog.Error("workflow run failed", "error", err, "request_id", requestid.Get(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat message"})
		return
	}

	suggestions := reply.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	classification := chat.ClassifyReply(reply.Content)

	c.JSON(http.StatusOK, ChatResponse{
		Role:              model.RoleAssistant,
		Content:           reply.Content,
		Suggestions:       suggestions,
		NeedsConfirmation: classification.NeedsConfirmation,
		ShowChart:         classification.ShowChart,
	})
}
