package market

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type CoinGeckoClient struct {
	httpClient *http.Client
}

func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CoinGeckoClient) Quotes(ids []string) ([]CryptoQuote, error) {
	url := fmt.Sprintf(
		"https://api.coingecko.com/api/v3/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true",
		strings.Join(ids, ","),
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw map[string]struct {
		USD       float64 `json:"usd"`
		USDChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	quotes := make([]CryptoQuote, 0, len(ids))
	for _, id := range ids {
		q, ok := raw[id]
		if !ok {
			continue
		}
		quotes = append(quotes, CryptoQuote{
			ID:        id,
			PriceUSD:  q.USD,
			Change24h: q.USDChange,
		})
	}
	return quotes, nil
}
