package chat

import "strings"

// Keyword sets driving the UI side panels. Matching is case-insensitive
// substring search over the assistant's reply.
var (
	confirmationKeywords = []string{"confirm", "approve", "proceed", "authorize"}
	portfolioKeywords    = []string{"portfolio", "holdings", "allocation", "investments"}
)

// Classification tells the UI which side panels an assistant reply should
// trigger.
type Classification struct {
	NeedsConfirmation bool
	ShowChart         bool
}

// ClassifyReply is pure: same text in, same flags out.
func ClassifyReply(text string) Classification {
	lowered := strings.ToLower(text)

	return Classification{
		NeedsConfirmation: containsAny(lowered, confirmationKeywords),
		ShowChart:         containsAny(lowered, portfolioKeywords),
	}
}

func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
