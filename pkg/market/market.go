package market

import (
	"fmt"
	"strings"
)

type CryptoQuote struct {
	ID        string
	PriceUSD  float64
	Change24h float64
}

type StockQuote struct {
	Symbol    string
	Current   float64
	ChangePct float64
}

type Weather struct {
	City         string
	TemperatureC float64
	Description  string
}

// Snapshot is the ancillary market/weather data for one run. It is passed
// through to rendering unmodified and never reconciled against LLM output.
type Snapshot struct {
	Crypto  []CryptoQuote
	Stocks  []StockQuote
	Weather *Weather
}

func (s Snapshot) Empty() bool {
	return len(s.Crypto) == 0 && len(s.Stocks) == 0 && s.Weather == nil
}

// ContextText renders the snapshot as plain text for the summarization prompt.
// Returns "" when the snapshot is empty.
func (s Snapshot) ContextText() string {
	if s.Empty() {
		return ""
	}

	var sb strings.Builder
	if len(s.Crypto) > 0 {
		sb.WriteString("暗号資産価格:\n")
		for _, q := range s.Crypto {
			sb.WriteString(fmt.Sprintf("- %s: $%.2f (24h %+.2f%%)\n", q.ID, q.PriceUSD, q.Change24h))
		}
	}
	if len(s.Stocks) > 0 {
		sb.WriteString("株価指数:\n")
		for _, q := range s.Stocks {
			sb.WriteString(fmt.Sprintf("- %s: %.2f (%+.2f%%)\n", q.Symbol, q.Current, q.ChangePct))
		}
	}
	if s.Weather != nil {
		sb.WriteString(fmt.Sprintf("天気（%s）: %s %.1f°C\n", s.Weather.City, s.Weather.Description, s.Weather.TemperatureC))
	}
	return sb.String()
}

// CryptoSource returns spot quotes for the given asset ids.
type CryptoSource interface {
	Quotes(ids []string) ([]CryptoQuote, error)
}

// StockSource returns quotes for the given ticker symbols.
type StockSource interface {
	Quotes(symbols []string) ([]StockQuote, error)
}

// WeatherSource returns current conditions for one location.
type WeatherSource interface {
	Current(lat, lon float64) (*Weather, error)
}
