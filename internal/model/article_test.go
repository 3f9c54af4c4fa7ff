package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSentimentLabel_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{-1.0, SentimentBearish},
		{-0.8, SentimentBearish},
		{-0.35, SentimentBearish},
		{-0.34, SentimentSomewhatBearish},
		{-0.15, SentimentSomewhatBearish},
		{-0.14, SentimentNeutral},
		{0.0, SentimentNeutral},
		{0.14, SentimentNeutral},
		{0.15, SentimentSomewhatBullish},
		{0.34, SentimentSomewhatBullish},
		{0.35, SentimentBullish},
		{0.8, SentimentBullish},
		{1.0, SentimentBullish},
	}

	for _, tt := range tests {
		got := SentimentLabel(tt.score)
		if got != tt.want {
			t.Errorf("SentimentLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSentimentLabel_MonotonicWithScore(t *testing.T) {
	rank := map[string]int{
		SentimentBearish:         0,
		SentimentSomewhatBearish: 1,
		SentimentNeutral:         2,
		SentimentSomewhatBullish: 3,
		SentimentBullish:         4,
	}

	prev := -1
	for score := -1.0; score <= 1.0; score += 0.05 {
		r, ok := rank[SentimentLabel(score)]
		if !ok {
			t.Fatalf("SentimentLabel(%v) returned unknown label %q", score, SentimentLabel(score))
		}
		if r < prev {
			t.Errorf("label rank decreased at score %v: %d -> %d", score, prev, r)
		}
		prev = r
	}

	assert.Equal(t, SentimentBearish, SentimentLabel(-1))
	assert.Equal(t, SentimentBullish, SentimentLabel(1))
}
