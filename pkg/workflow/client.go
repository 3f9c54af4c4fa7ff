package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultSessionID is used when the caller supplies no session, so keyless
// visitors still share one coherent workflow conversation.
const DefaultSessionID = "default_session"

const fallbackMessage = "Sorry, I couldn't process that request."

// Reply is one unwrapped assistant turn. Content is never empty and
// Suggestions is never nil.
type Reply struct {
	Content     string
	Suggestions []string
}

// Client calls a Langflow-style workflow run API.
type Client struct {
	baseURL    string
	flowID     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, flowID, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		flowID:     flowID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Run sends one chat turn through the workflow and unwraps the reply
// envelope. Transport faults and non-2xx statuses surface as errors;
// a malformed envelope degrades to raw text instead.
func (c *Client) Run(input, sessionID string) (*Reply, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	body, err := json.Marshal(runRequest{
		InputValue: input,
		OutputType: "chat",
		InputType:  "chat",
		SessionID:  sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("workflow encode: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/run/%s", c.baseURL, c.flowID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("workflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workflow run: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("workflow read: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("workflow status %d", resp.StatusCode)
	}

	return unwrap(raw), nil
}

// unwrap digs the assistant text out of the run envelope. The message text
// lives under the first output's results; older flows expose it under
// artifacts instead. Unwrapping never fails.
func unwrap(raw []byte) *Reply {
	text := gjson.GetBytes(raw, "outputs.0.outputs.0.results.message.text")
	if !text.Exists() {
		text = gjson.GetBytes(raw, "outputs.0.outputs.0.artifacts.message")
	}
	if text.Type != gjson.String || text.String() == "" {
		slog.Warn("unrecognized workflow envelope, using fallback reply")
		return &Reply{Content: fallbackMessage, Suggestions: []string{}}
	}

	if reply, ok := parseStructured(text.String()); ok {
		return reply
	}

	return &Reply{Content: text.String(), Suggestions: []string{}}
}

// parseStructured handles the double-encoded variant, where the message text
// is itself a JSON document {"results":[{"response":..., "metadata":
// {"suggestions":[...]}}]}. Anything that doesn't match that shape is
// reported as a miss so the caller keeps the raw text.
func parseStructured(text string) (*Reply, bool) {
	if !gjson.Valid(text) {
		return nil, false
	}

	response := gjson.Get(text, "results.0.response")
	if response.Type != gjson.String || response.String() == "" {
		return nil, false
	}

	suggestions := []string{}
	for _, item := range gjson.Get(text, "results.0.metadata.suggestions").Array() {
		if item.Type == gjson.String {
			suggestions = append(suggestions, item.String())
		}
	}

	return &Reply{Content: response.String(), Suggestions: suggestions}, true
}

type runRequest struct {
	InputValue string `json:"input_value"`
	OutputType string `json:"output_type"`
	InputType  string `json:"input_type"`
	SessionID  string `json:"session_id"`
}
