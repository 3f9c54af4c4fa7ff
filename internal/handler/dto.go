package handler

import (
	"github.com/mrhakimov/news/internal/model"
)

// CreateNewsRequest carries the free-text description to synthesize an
// article from. Message is a pointer so a missing field can be told apart
// from an empty one.
type CreateNewsRequest struct {
	Message *string `json:"message"`
}

type CreateNewsResponse struct {
	Message       string         `json:"message"`
	Article       *model.Article `json:"article"`
	TotalArticles int            `json:"total_articles"`
}

type NewsListResponse struct {
	Articles   []*model.Article `json:"articles"`
	TotalCount int              `json:"total_count"`
}

type ChatRequest struct {
	Messages  []model.ChatMessage `json:"messages"`
	SessionID string              `json:"sessionId"`
}

// ChatResponse is one assistant turn. The two classification flags are
// omitted when false so older UI builds keep working unchanged.
type ChatResponse struct {
	Role              string   `json:"role"`
	Content           string   `json:"content"`
	Suggestions       []string `json:"suggestions"`
	NeedsConfirmation bool     `json:"needs_confirmation,omitempty"`
	ShowChart         bool     `json:"show_chart,omitempty"`
}
