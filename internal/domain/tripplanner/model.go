package tripplanner

import (
	"time"

	"github.com/yanqian/trip-planner/pkg/metrics"
)

// Config wires runtime settings for the Trip Planner section.
type Config struct {
	Prompt   string
	TimeZone string
}

// Request is the Trip Planner form: free text plus the calendar opt-in.
type Request struct {
	Prompt        string `json:"prompt"`
	AddToCalendar bool   `json:"addToCalendar"`
	StartDate     string `json:"startDate,omitempty"`
}

// Response carries the itinerary and, when requested, the calendar outcome.
type Response struct {
	Itinerary  string              `json:"itinerary"`
	Model      string              `json:"model,omitempty"`
	DurationMs int64               `json:"durationMs"`
	TokenUsage *metrics.TokenUsage `json:"tokenUsage,omitempty"`
	Calendar   *CalendarOutcome    `json:"calendar,omitempty"`
}

// CalendarOutcome reports what happened to the optional calendar event.
type CalendarOutcome struct {
	Attempted bool   `json:"attempted"`
	Created   bool   `json:"created"`
	EventID   string `json:"eventId,omitempty"`
	Link      string `json:"link,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	TimeZone  string `json:"timeZone,omitempty"`
	Message   string `json:"message"`
}

// CalendarStatus tells the page whether the opt-in control can be offered.
type CalendarStatus struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// DateRange is the inclusive trip span derived from the start date and day count.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CalendarEvent is the payload handed to the calendar provider.
// Start and End are local wall-clock times in TimeZone.
type CalendarEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// EventRef identifies a created calendar event.
type EventRef struct {
	ID   string
	Link string
}
