package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You are a financial news writer. Given a short news description, write a professional news headline and a 2-3 sentence summary that expands on the description with relevant context.

Output only valid JSON in exactly this format, no other text:
{
  "title": "headline based on the description",
  "summary": "detailed 2-3 sentence summary"
}`

// Result is one generated article draft.
type Result struct {
	Title   string
	Summary string
}

// Client turns a raw news description into a draft title and summary.
// Any error means the caller should fall back to locally built text.
type Client interface {
	Generate(description string) (*Result, error)
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

func parseResult(content string) (*Result, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w, content: %s", err, content)
	}

	if strings.TrimSpace(parsed.Title) == "" || strings.TrimSpace(parsed.Summary) == "" {
		return nil, fmt.Errorf("model returned empty title or summary, content: %s", content)
	}

	return &Result{Title: parsed.Title, Summary: parsed.Summary}, nil
}
