package market

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type OpenMeteoClient struct {
	city       string
	httpClient *http.Client
}

func NewOpenMeteoClient(city string) *OpenMeteoClient {
	return &OpenMeteoClient{
		city:       city,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenMeteoClient) Current(lat, lon float64) (*Weather, error) {
	url := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		lat, lon,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("open-meteo fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("open-meteo decode: %w", err)
	}

	return &Weather{
		City:         c.city,
		TemperatureC: raw.CurrentWeather.Temperature,
		Description:  weatherDescription(raw.CurrentWeather.WeatherCode),
	}, nil
}

// weatherDescription maps WMO weather codes to short Japanese labels.
func weatherDescription(code int) string {
	switch {
	case code == 0:
		return "快晴"
	case code <= 3:
		return "晴れ時々曇り"
	case code <= 48:
		return "霧"
	case code <= 67:
		return "雨"
	case code <= 77:
		return "雪"
	case code <= 82:
		return "にわか雨"
	case code <= 86:
		return "にわか雪"
	default:
		return "雷雨"
	}
}
