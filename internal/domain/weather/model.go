package weather

import (
	"fmt"
	"time"
)

// Series sizes of the rendered forecast.
const (
	HourlyPoints = 8
	DailyStride  = 8
)

// Request names the city to forecast.
type Request struct {
	City string `json:"city"`
}

// Forecast is the provider's 3-hourly list, normalized.
type Forecast struct {
	City      string
	Country   string
	UTCOffset time.Duration
	Entries   []Entry
}

// Entry is a single forecast point.
type Entry struct {
	Time          time.Time
	Temperature   float64
	Humidity      float64
	Description   string
	WindSpeed     float64
	Precipitation float64
}

// Snapshot is the per-request forecast reduced to what the page shows.
type Snapshot struct {
	City      string
	Country   string
	UTCOffset time.Duration
	Current   Entry
	Hourly    []Entry
	Daily     []Entry
}

// StatusError is returned by providers on a non-success HTTP status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather provider returned status %d: %s", e.StatusCode, e.Body)
}
