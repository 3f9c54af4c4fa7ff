package repository

import (
	"sync"

	"github.com/mrhakimov/news/internal/model"
)

// ArticleRepository is the process-local news feed: an append-only,
// insertion-ordered list plus the sequence counter used to mint synthetic
// identifiers. One instance is constructed at startup and shared by all
// request handlers, so access is mutex-guarded. Nothing is persisted; a
// restart starts over from an empty feed and sequence 0.
type ArticleRepository struct {
	mu       sync.RWMutex
	articles []*model.Article
	seq      int64
}

func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{}
}

// NextSequence reserves and returns the next creation sequence number.
// Sequences start at 1 and are never reused, even across failed generations.
func (r *ArticleRepository) NextSequence() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq
}

// Add appends an article to the feed.
func (r *ArticleRepository) Add(article *model.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append(r.articles, article)
}

// List returns every stored article in insertion order. The slice is the
// caller's own; the records it points at are shared and must not be mutated.
func (r *ArticleRepository) List() []*model.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// Count reports how many articles have been added since process start.
func (r *ArticleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}
