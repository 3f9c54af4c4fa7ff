package model

// Sentiment label bands, ordered from most bearish to most bullish. The
// thresholds in SentimentLabel follow the Alpha Vantage convention so the
// stored feed stays interchangeable with real NEWS_SENTIMENT data.
const (
	SentimentBearish         = "Bearish"
	SentimentSomewhatBearish = "Somewhat-Bearish"
	SentimentNeutral         = "Neutral"
	SentimentSomewhatBullish = "Somewhat-Bullish"
	SentimentBullish         = "Bullish"
)

// TimePublishedLayout is the timestamp layout used by Article.TimePublished.
const TimePublishedLayout = "20060102T150405"

type Article struct {
	Title                 string            `json:"title"`
	URL                   string            `json:"url"`
	TimePublished         string            `json:"time_published"`
	Authors               []string          `json:"authors"`
	Summary               string            `json:"summary"`
	BannerImage           string            `json:"banner_image"`
	Source                string            `json:"source"`
	CategoryWithinSource  string            `json:"category_within_source"`
	SourceDomain          string            `json:"source_domain"`
	Topics                []Topic           `json:"topics"`
	OverallSentimentScore float64           `json:"overall_sentiment_score"`
	OverallSentimentLabel string            `json:"overall_sentiment_label"`
	TickerSentiment       []TickerSentiment `json:"ticker_sentiment"`
}

type Topic struct {
	Topic          string `json:"topic"`
	RelevanceScore string `json:"relevance_score"`
}

// TickerSentiment is reserved for a per-ticker breakdown; the feed currently
// always carries an empty list.
type TickerSentiment struct {
	Ticker               string `json:"ticker"`
	RelevanceScore       string `json:"relevance_score"`
	TickerSentimentScore string `json:"ticker_sentiment_score"`
	TickerSentimentLabel string `json:"ticker_sentiment_label"`
}

// SentimentLabel maps an overall sentiment score in [-1, 1] onto a label
// band. Monotonic: a higher score never yields a more bearish label.
func SentimentLabel(score float64) string {
	switch {
	case score <= -0.35:
		return SentimentBearish
	case score <= -0.15:
		return SentimentSomewhatBearish
	case score < 0.15:
		return SentimentNeutral
	case score < 0.35:
		return SentimentSomewhatBullish
	default:
		return SentimentBullish
	}
}
