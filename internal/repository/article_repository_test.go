package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/mrhakimov/news/internal/model"
)

func TestAddAndList_InsertionOrder(t *testing.T) {
	repo := NewArticleRepository()

	for i := 0; i < 3; i++ {
		repo.Add(&model.Article{Title: fmt.Sprintf("Article %d", i)})
	}

	articles := repo.List()
	assert.Equal(t, 3, len(articles))
	assert.Equal(t, 3, repo.Count())
	assert.Equal(t, "Article 0", articles[0].Title)
	assert.Equal(t, "Article 1", articles[1].Title)
	assert.Equal(t, "Article 2", articles[2].Title)
}

func TestList_IdempotentWithoutAdd(t *testing.T) {
	repo := NewArticleRepository()
	repo.Add(&model.Article{Title: "Only one"})

	first := repo.List()
	second := repo.List()

	assert.Equal(t, len(first), len(second))
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("List returned different records at index %d", i)
		}
	}
}

func TestList_EmptyFeed(t *testing.T) {
	repo := NewArticleRepository()

	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, 0, len(repo.List()))
}

func TestNextSequence_StrictlyIncreasing(t *testing.T) {
	repo := NewArticleRepository()

	assert.Equal(t, int64(1), repo.NextSequence())
	assert.Equal(t, int64(2), repo.NextSequence())

	// Sequences advance even when no article lands in the feed.
	assert.Equal(t, 0, repo.Count())
	assert.Equal(t, int64(3), repo.NextSequence())
}

func TestConcurrentAddAndSequence(t *testing.T) {
	repo := NewArticleRepository()

	const writers = 16
	const perWriter = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				seq := repo.NextSequence()
				repo.Add(&model.Article{URL: fmt.Sprintf("https://example.com/news/%d", seq)})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, repo.Count())
	assert.Equal(t, int64(writers*perWriter+1), repo.NextSequence())

	seen := make(map[string]bool)
	for _, a := range repo.List() {
		if seen[a.URL] {
			t.Fatalf("sequence reused: %s", a.URL)
		}
		seen[a.URL] = true
	}
}
