package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// sampleDescriptions gives a fresh backend a believable feed to demo with.
var sampleDescriptions = []string{
	"Fed signals possible rate cut later this year",
	"Tech stocks rally on strong quarterly earnings",
	"Oil prices dip as supply concerns ease",
	"Major bank announces $2 billion share buyback program",
	"Housing market shows signs of cooling in major cities",
	"Chipmaker beats revenue estimates on AI demand",
	"Retail sales slow as consumers pull back on spending",
	"Crypto exchange wins approval for European expansion",
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	baseURL := os.Getenv("NEWS_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5050"
	}

	client := &http.Client{Timeout: 30 * time.Second}

	var seeded, errors int

	for _, description := range sampleDescriptions {
		body, err := json.Marshal(map[string]string{"message": description})
		if err != nil {
			slog.Error("error encoding description", "description", description, "error", err)
			errors++
			continue
		}

		resp, err := client.Post(baseURL+"/news", "application/json", bytes.NewReader(body))
		if err != nil {
			slog.Error("error posting description", "description", description, "error", err)
			errors++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			slog.Error("unexpected status", "description", description, "status", resp.StatusCode)
			errors++
			continue
		}

		seeded++
		slog.Info("article seeded", "description", description)
	}

	slog.Info("seeding complete", "seeded", seeded, "errors", errors)
}
