package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// API configures the news backend process.
type API struct {
	Addr        string `env:"NEWS_ADDR" envDefault:":5050"`
	FrontendURL string `env:"FRONTEND_URL"`

	// Generation provider. "mistral" (default), "anthropic", or "none" to
	// run keyless on fallback formatting only.
	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"mistral"`
	MistralAPIKey   string `env:"MISTRAL_API_KEY"`
	MistralModel    string `env:"MISTRAL_MODEL"`
	MistralBaseURL  string `env:"MISTRAL_BASE_URL"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
}

// Chat configures the chat proxy process.
type Chat struct {
	Addr string `env:"CHAT_ADDR" envDefault:":3000"`

	LangflowURL    string `env:"LANGFLOW_URL" envDefault:"http://localhost:7860"`
	LangflowFlowID string `env:"LANGFLOW_FLOW_ID,required,notEmpty"`
	LangflowAPIKey string `env:"LANGFLOW_API_KEY"`
}

func LoadAPI() (*API, error) {
	cfg := &API{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse api config: %w", err)
	}
	return cfg, nil
}

func LoadChat() (*Chat, error) {
	cfg := &Chat{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse chat config: %w", err)
	}
	return cfg, nil
}
