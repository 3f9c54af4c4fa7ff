package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrhakimov/news/internal/model"
)

type ArticleStore interface {
	Add(article *model.Article)
	List() []*model.Article
	Count() int
}

type Synthesizer interface {
	Synthesize(description string) *model.Article
}

type NewsHandler struct {
	store       ArticleStore
	synthesizer Synthesizer
}

func NewNewsHandler(store ArticleStore, synthesizer Synthesizer) *NewsHandler {
	return &NewsHandler{
		store:       store,
		synthesizer: synthesizer,
	}
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'message' field in request body"})
		return
	}

	if strings.TrimSpace(*req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	article := h.synthesizer.Synthesize(*req.Message)
	h.store.Add(article)

	slog.Info("news article created", "title", article.Title, "source", article.Source)

	c.JSON(http.StatusCreated, CreateNewsResponse{
		Message:       "News article created successfully",
		Article:       article,
		TotalArticles: h.store.Count(),
	})
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	articles := h.store.List()
	if articles == nil {
		articles = []*model.Article{}
	}

	c.JSON(http.StatusOK, NewsListResponse{
		Articles:   articles,
		TotalCount: h.store.Count(),
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "News backend is running",
	})
}
