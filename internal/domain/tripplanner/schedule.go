package tripplanner

import (
	"strings"
	"time"

	"github.com/yanqian/trip-planner/pkg/util"
)

// Event wall-clock bounds.
const (
	eventStartHour = 9
	eventEndHour   = 17
)

// DateTimeLayout is the ISO-8601 local date-time sent alongside a time zone name.
const DateTimeLayout = "2006-01-02T15:04:05"

// NewDateRange spans start through start+days, keeping start's location.
func NewDateRange(start time.Time, days int) DateRange {
	day := util.StartOfDay(start, nil)
	return DateRange{Start: day, End: day.AddDate(0, 0, days)}
}

// BuildEvent turns a trip into a calendar event running 09:00 on the first day to 17:00 on the last.
func BuildEvent(input, itinerary string, rng DateRange, timeZone string) CalendarEvent {
	loc := rng.Start.Location()
	return CalendarEvent{
		Summary:     eventSummary(input),
		Description: itinerary,
		Start:       time.Date(rng.Start.Year(), rng.Start.Month(), rng.Start.Day(), eventStartHour, 0, 0, 0, loc),
		End:         time.Date(rng.End.Year(), rng.End.Month(), rng.End.Day(), eventEndHour, 0, 0, 0, loc),
		TimeZone:    timeZone,
	}
}

func eventSummary(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "Trip"
	}
	return "Trip to " + fields[0]
}
