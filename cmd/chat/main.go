package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mrhakimov/news/internal/config"
	"github.com/mrhakimov/news/internal/handler"
	"github.com/mrhakimov/news/internal/webui"
	"github.com/mrhakimov/news/pkg/workflow"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.LoadChat()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	assets, err := webui.Assets()
	if err != nil {
		log.Fatalf("error loading UI assets: %v", err)
	}

	runner := workflow.NewClient(cfg.LangflowURL, cfg.LangflowFlowID, cfg.LangflowAPIKey)
	chatHandler := handler.NewChatHandler(runner)

	r := gin.Default()
	r.Use(requestid.New())

	r.POST("/api/chat", chatHandler.HandleChat)
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(assets))))

	slog.Info("chat proxy configured", "workflow_url", cfg.LangflowURL)

	err = r.Run(cfg.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
