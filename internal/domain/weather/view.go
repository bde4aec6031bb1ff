package weather

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// View is the render model of a forecast, free of any markup.
type View struct {
	City    string      `json:"city"`
	Country string      `json:"country,omitempty"`
	Current CurrentView `json:"current"`
	Hourly  []PointView `json:"hourly"`
	Daily   []PointView `json:"daily"`
}

// CurrentView is the headline reading.
type CurrentView struct {
	Observed           string  `json:"observed"`
	ForecastTime       string  `json:"forecastTime"`
	Description        string  `json:"description"`
	Temperature        float64 `json:"temperature"`
	TemperatureLabel   string  `json:"temperatureLabel"`
	Humidity           float64 `json:"humidity"`
	HumidityLabel      string  `json:"humidityLabel"`
	WindSpeed          float64 `json:"windSpeed"`
	WindLabel          string  `json:"windLabel"`
	Precipitation      float64 `json:"precipitation"`
	PrecipitationLabel string  `json:"precipitationLabel"`
}

// PointView is one entry of the hourly or daily strip.
type PointView struct {
	Label            string  `json:"label"`
	Time             string  `json:"time"`
	Temperature      float64 `json:"temperature"`
	TemperatureLabel string  `json:"temperatureLabel"`
}

// Render labels a snapshot in the city's local time. now is the moment the page is rendered.
func Render(snapshot Snapshot, now time.Time) View {
	loc := time.FixedZone(snapshot.City, int(snapshot.UTCOffset/time.Second))
	current := snapshot.Current

	view := View{
		City:    snapshot.City,
		Country: snapshot.Country,
		Current: CurrentView{
			Observed:           now.In(loc).Format("Monday, 03:04 PM"),
			ForecastTime:       current.Time.In(loc).Format(time.RFC3339),
			Description:        capitalize(current.Description),
			Temperature:        current.Temperature,
			TemperatureLabel:   formatNumber(current.Temperature) + "°C",
			Humidity:           current.Humidity,
			HumidityLabel:      formatNumber(current.Humidity) + "%",
			WindSpeed:          current.WindSpeed,
			WindLabel:          formatNumber(current.WindSpeed) + " m/s",
			Precipitation:      current.Precipitation,
			PrecipitationLabel: formatNumber(current.Precipitation) + " mm",
		},
		Hourly: make([]PointView, 0, len(snapshot.Hourly)),
		Daily:  make([]PointView, 0, len(snapshot.Daily)),
	}
	for _, entry := range snapshot.Hourly {
		view.Hourly = append(view.Hourly, point(entry, loc, "03 PM"))
	}
	for _, entry := range snapshot.Daily {
		view.Daily = append(view.Daily, point(entry, loc, "Mon"))
	}
	return view
}

func point(entry Entry, loc *time.Location, layout string) PointView {
	local := entry.Time.In(loc)
	return PointView{
		Label:            local.Format(layout),
		Time:             local.Format(time.RFC3339),
		Temperature:      entry.Temperature,
		TemperatureLabel: formatNumber(entry.Temperature) + "°C",
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
