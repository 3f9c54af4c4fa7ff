package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultMistralBaseURL = "https://api.mistral.ai/v1"
	DefaultMistralModel   = "mistral-large-latest"
)

// MistralClient calls Mistral's OpenAI-compatible chat completions API
// through the openai-go SDK pointed at the Mistral endpoint.
type MistralClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewMistralClient(apiKey, baseURL, model string) *MistralClient {
	if baseURL == "" {
		baseURL = DefaultMistralBaseURL
	}
	if model == "" {
		model = DefaultMistralModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)

	return &MistralClient{
		client: &client,
		model:  openai.ChatModel(model),
	}
}

func (c *MistralClient) Generate(description string) (*Result, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(800),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf("News description: %s", description)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mistral API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from mistral")
	}

	return parseResult(resp.Choices[0].Message.Content)
}
