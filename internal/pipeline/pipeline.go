// Package pipeline runs one generation pass: fetch, index, summarize,
// reconcile, publish. Fully synchronous; one invocation per run, no retries.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/cc-kojima-a/Kojima-News/internal/config"
	"github.com/cc-kojima-a/Kojima-News/internal/model"
	"github.com/cc-kojima-a/Kojima-News/internal/publish"
	"github.com/cc-kojima-a/Kojima-News/internal/reconcile"
	"github.com/cc-kojima-a/Kojima-News/pkg/llm"
	"github.com/cc-kojima-a/Kojima-News/pkg/market"
	"github.com/cc-kojima-a/Kojima-News/pkg/news"
)

// Deps are the pipeline's external collaborators. Market sources are
// optional; a nil source simply contributes nothing to the snapshot.
type Deps struct {
	Fetcher    news.Fetcher
	Summarizer llm.Summarizer
	Crypto     market.CryptoSource
	Stocks     market.StockSource
	Weather    market.WeatherSource
	Now        func() time.Time
}

type Pipeline struct {
	cfg  *config.Config
	deps Deps
}

func New(cfg *config.Config, deps Deps) *Pipeline {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Pipeline{cfg: cfg, deps: deps}
}

// Run executes one generation pass. Feed, market and summarization failures
// degrade the output but never abort the run; only a publish failure is
// returned as an error.
func (p *Pipeline) Run(ctx context.Context) error {
	now := p.deps.Now().In(model.JST)
	date := now.Format("2006-01-02")
	slog.Info("generating news", "date", date)

	articles := news.Collect(p.deps.Fetcher, p.cfg.Feeds, now, p.cfg.Window())

	total := 0
	for _, list := range articles {
		total += len(list)
	}
	slog.Info("articles collected", "total", total, "groups", len(articles))

	snapshot := p.gatherMarket()

	req := llm.BuildRequest(p.cfg.Groups, articles, p.cfg.Categories, snapshot.ContextText())

	result := &llm.Result{}
	if req.Empty() {
		slog.Info("no articles and no market data, skipping summarization")
	} else {
		r, err := p.deps.Summarizer.Summarize(ctx, req.Prompt)
		if err != nil {
			slog.Error("summarization failed, publishing without summary", "error", err)
		} else {
			result = r
		}
	}

	report := reconcile.Reconcile(result, p.cfg.Groups, articles, p.cfg.Categories)

	page := publish.BuildPage(date, report, p.cfg.Groups, p.cfg.Categories, snapshot)
	return publish.NewPublisher(p.cfg.DocsDir).Publish(page)
}

// gatherMarket collects the ancillary data points. A failing provider is
// logged and its data point omitted from the snapshot.
func (p *Pipeline) gatherMarket() market.Snapshot {
	var snapshot market.Snapshot

	if p.deps.Crypto != nil && len(p.cfg.Market.CryptoIDs) > 0 {
		quotes, err := p.deps.Crypto.Quotes(p.cfg.Market.CryptoIDs)
		if err != nil {
			slog.Error("error fetching crypto quotes", "error", err)
		} else {
			snapshot.Crypto = quotes
		}
	}

	if p.deps.Stocks != nil && len(p.cfg.Market.StockSymbols) > 0 {
		quotes, err := p.deps.Stocks.Quotes(p.cfg.Market.StockSymbols)
		if err != nil {
			slog.Error("error fetching stock quotes", "error", err)
		} else {
			snapshot.Stocks = quotes
		}
	}

	if p.deps.Weather != nil && p.cfg.Market.Weather != nil {
		w, err := p.deps.Weather.Current(p.cfg.Market.Weather.Latitude, p.cfg.Market.Weather.Longitude)
		if err != nil {
			slog.Error("error fetching weather", "error", err)
		} else {
			snapshot.Weather = w
		}
	}

	return snapshot
}
