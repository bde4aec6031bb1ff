package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/yanqian/trip-planner/internal/domain/weather"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// Client fetches 5 day / 3 hour forecasts from OpenWeather.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the metric forecast for a city name.
func (c *Client) Fetch(ctx context.Context, city string) (weather.Forecast, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Forecast{}, &weather.StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(payload)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Forecast{}, apperrors.Wrap(apperrors.CodeWeatherData, "malformed forecast payload", err)
	}
	if raw.List == nil {
		return weather.Forecast{}, apperrors.Wrap(apperrors.CodeWeatherData, "malformed forecast payload", errors.New("missing list"))
	}

	return normalize(raw), nil
}

type apiResponse struct {
	List []listEntry `json:"list"`
	City apiCity     `json:"city"`
}

type apiCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

type listEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

func normalize(raw apiResponse) weather.Forecast {
	entries := make([]weather.Entry, 0, len(raw.List))
	for _, item := range raw.List {
		if item.Dt == 0 {
			continue
		}
		entry := weather.Entry{
			Time:          time.Unix(item.Dt, 0).UTC(),
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			WindSpeed:     item.Wind.Speed,
			Precipitation: item.Rain["3h"],
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})

	return weather.Forecast{
		City:      raw.City.Name,
		Country:   raw.City.Country,
		UTCOffset: time.Duration(raw.City.Timezone) * time.Second,
		Entries:   entries,
	}
}
