package synthesizer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mrhakimov/news/internal/model"
	"github.com/mrhakimov/news/pkg/llm"
)

const (
	fallbackTitleLimit = 120

	defaultCategory = "Business News"
)

// Demo lookup pools. Values are arbitrary but fixed so the feed stays
// stable across runs; sources and domains are co-indexed.
var sourceDomainPairs = []struct {
	source string
	domain string
}{
	{"Reuters", "reuters.com"},
	{"Bloomberg", "bloomberg.com"},
	{"CNBC", "cnbc.com"},
	{"MarketWatch", "marketwatch.com"},
	{"Yahoo Finance", "finance.yahoo.com"},
	{"Financial Times", "ft.com"},
	{"Wall Street Journal", "wsj.com"},
	{"Business Insider", "businessinsider.com"},
}

var authorPool = []string{
	"Financial Reporter",
	"Market Analyst",
	"Business Correspondent",
	"Economic Editor",
	"Investment Writer",
	"Finance Journalist",
}

var topicPool = []string{
	"blockchain",
	"earnings",
	"ipo",
	"mergers_and_acquisitions",
	"financial_markets",
	"economy_fiscal",
	"economy_monetary",
	"economy_macro",
	"energy_transportation",
	"finance",
	"life_sciences",
	"manufacturing",
	"real_estate",
	"retail_wholesale",
	"technology",
}

// sentimentScorePool cycles through all five label bands.
var sentimentScorePool = []float64{0.0, 0.42, -0.3, 0.25, 0.68, -0.5, 0.12, -0.18}

// Sequencer hands out strictly increasing article sequence numbers.
type Sequencer interface {
	NextSequence() int64
}

// Synthesizer builds complete article records from free-text descriptions.
// Title and summary come from the generation client when one is configured;
// all remaining metadata is derived locally from the sequence number.
type Synthesizer struct {
	llm llm.Client
	seq Sequencer
}

// New returns a synthesizer. client may be nil, in which case every
// article is built from the fallback formatter.
func New(client llm.Client, seq Sequencer) *Synthesizer {
	return &Synthesizer{
		llm: client,
		seq: seq,
	}
}

// Synthesize never fails: generation errors are logged and replaced by
// deterministic fallback text. Consumes exactly one sequence number.
func (s *Synthesizer) Synthesize(description string) *model.Article {
	title, summary := s.generate(description)

	seq := s.seq.NextSequence()

	pair := sourceDomainPairs[int(seq)%len(sourceDomainPairs)]
	author := authorPool[int(seq)%len(authorPool)]
	primaryTopic := topicPool[int(seq)%len(topicPool)]
	secondaryTopic := topicPool[int(seq+7)%len(topicPool)]
	score := sentimentScorePool[int(seq)%len(sentimentScorePool)]

	return &model.Article{
		Title:                title,
		URL:                  fmt.Sprintf("https://%s/news/%d", pair.domain, 1000+seq),
		TimePublished:        time.Now().Format(model.TimePublishedLayout),
		Authors:              []string{author},
		Summary:              summary,
		BannerImage:          fmt.Sprintf("https://example.com/images/news_%d.jpg", seq),
		Source:               pair.source,
		CategoryWithinSource: defaultCategory,
		SourceDomain:         pair.domain,
		Topics: []model.Topic{
			{Topic: primaryTopic, RelevanceScore: "0.8"},
			{Topic: secondaryTopic, RelevanceScore: "0.5"},
		},
		OverallSentimentScore: score,
		OverallSentimentLabel: model.SentimentLabel(score),
		TickerSentiment:       []model.TickerSentiment{},
	}
}

func (s *Synthesizer) generate(description string) (title, summary string) {
	if s.llm == nil {
		return fallbackContent(description)
	}

	result, err := s.llm.Generate(description)
	if err != nil {
		slog.Error("article generation failed, using fallback", "error", err)
		return fallbackContent(description)
	}

	return result.Title, result.Summary
}

// fallbackContent is pure and total: no I/O, no failure mode.
func fallbackContent(description string) (title, summary string) {
	title = "News: " + description
	if runes := []rune(title); len(runes) > fallbackTitleLimit {
		title = string(runes[:fallbackTitleLimit])
	}

	summary = fmt.Sprintf(
		"This is a news article about %s. More details will be provided as the story develops.",
		description,
	)

	return title, summary
}
