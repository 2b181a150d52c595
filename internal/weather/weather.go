// Package weather fetches current conditions from the Open-Meteo forecast
// API for the fixed home coordinates. Callers treat any failure as "weather
// unavailable" — the lookup is best effort and never fatal.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Home coordinates for the display, roughly Mayo/Westport.
const (
	DefaultLat      = 53.8
	DefaultLon      = -9.5
	DefaultTimezone = "Europe/Dublin"
)

// Report is the condensed conditions the e-paper display renders.
type Report struct {
	Temp    int    `json:"temp"`
	TempMin int    `json:"tempMin"`
	TempMax int    `json:"tempMax"`
	WindKph int    `json:"windKph"`
	Desc    string `json:"desc"`
}

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Lat, Lon   float64
	Timezone   string
}

func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    DefaultBaseURL,
		Lat:        DefaultLat,
		Lon:        DefaultLon,
		Timezone:   DefaultTimezone,
	}
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Current makes a single fetch, no retries. Non-OK statuses and malformed
// payloads are errors the caller degrades on.
func (c *Client) Current(ctx context.Context) (*Report, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", c.Lat))
	q.Set("longitude", fmt.Sprintf("%g", c.Lon))
	q.Set("current_weather", "true")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("timezone", c.Timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather fetch returned status %d", resp.StatusCode)
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	temp := int(math.Round(data.CurrentWeather.Temperature))
	report := &Report{
		Temp:    temp,
		TempMin: temp,
		TempMax: temp,
		WindKph: int(math.Round(data.CurrentWeather.WindSpeed)),
		Desc:    Describe(data.CurrentWeather.WeatherCode),
	}
	if len(data.Daily.TemperatureMax) > 0 {
		report.TempMax = int(math.Round(data.Daily.TemperatureMax[0]))
	}
	if len(data.Daily.TemperatureMin) > 0 {
		report.TempMin = int(math.Round(data.Daily.TemperatureMin[0]))
	}
	return report, nil
}

// Describe maps an Open-Meteo weather code to a short display string.
func Describe(code int) string {
	switch code {
	case 0:
		return "Clear"
	case 1, 2:
		return "Partly cloudy"
	case 3:
		return "Overcast"
	case 45, 48:
		return "Fog"
	case 51, 53, 55:
		return "Drizzle"
	case 61, 63, 65:
		return "Rain"
	case 71, 73, 75:
		return "Snow"
	case 80, 81, 82:
		return "Showers"
	case 95, 96, 99:
		return "Thunder"
	default:
		return "Cloudy"
	}
}
