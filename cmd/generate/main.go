package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/pipeline"
	"github.com/cc-kojima-a/Kojima-News/pkg/llm"
	"github.com/cc-kojima-a/Kojima-News/pkg/market"
	"github.com/cc-kojima-a/Kojima-News/pkg/news"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// The credential check is fatal and happens before any network call.
	summarizer, err := newSummarizer(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	deps := pipeline.Deps{
		Fetcher:    news.NewRSSFetcher(),
		Summarizer: summarizer,
		Crypto:     market.NewCoinGeckoClient(),
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		deps.Stocks = market.NewFinnhubClient(key)
	}
	if cfg.Market.Weather != nil {
		deps.Weather = market.NewOpenMeteoClient(cfg.Market.Weather.City)
	}

	if err := pipeline.New(cfg, deps).Run(context.Background()); err != nil {
		log.Fatalf("error publishing: %v", err)
	}

	slog.Info("done")
}

func newSummarizer(cfg *config.Config) (llm.Summarizer, error) {
	switch cfg.LLM.Provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errMissingKey("OPENAI_API_KEY")
		}
		return llm.NewOpenAIClient(key), nil
	default:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, errMissingKey("ANTHROPIC_API_KEY")
		}
		return llm.NewAnthropicClient(key), nil
	}
}

type errMissingKey string

func (e errMissingKey) Error() string {
	return "error: " + string(e) + " is not set"
}
