package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Quotes(symbols []string) ([]StockQuote, error) {
	var quotes []StockQuote
	for _, sym := range symbols {
		res, _, err := c.client.Quote(context.Background()).Symbol(sym).Execute()
		if err != nil {
			return nil, fmt.Errorf("finnhub quote %s: %w", sym, err)
		}
		quotes = append(quotes, StockQuote{
			Symbol:    sym,
			Current:   float64(res.GetC()),
			ChangePct: float64(res.GetDp()),
		})
	}
	return quotes, nil
}
