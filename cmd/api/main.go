package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mrhakimov/news/internal/config"
	"github.com/mrhakimov/news/internal/handler"
	"github.com/mrhakimov/news/internal/repository"
	"github.com/mrhakimov/news/internal/synthesizer"
	"github.com/mrhakimov/news/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	store := repository.NewArticleRepository()
	newsHandler := handler.NewNewsHandler(store, synthesizer.New(buildLLMClient(cfg), store))

	r := gin.Default()
	r.Use(requestid.New())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("allowed origins", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/news", newsHandler.CreateNews)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(cfg.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// buildLLMClient picks the generation provider. A missing key is not fatal:
// the synthesizer runs on fallback formatting without a client.
func buildLLMClient(cfg *config.API) llm.Client {
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			slog.Warn("ANTHROPIC_API_KEY not set, articles will use fallback formatting")
			return nil
		}
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	case "none":
		return nil
	default:
		if cfg.MistralAPIKey == "" {
			slog.Warn("MISTRAL_API_KEY not set, articles will use fallback formatting")
			return nil
		}
		return llm.NewMistralClient(cfg.MistralAPIKey, cfg.MistralBaseURL, cfg.MistralModel)
	}
}
