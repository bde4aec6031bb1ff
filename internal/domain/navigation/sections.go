package navigation

import (
	"strings"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// Section identifies one feature page.
type Section string

const (
	LocationFinder         Section = "location-finder"
	TripPlanner            Section = "trip-planner"
	WeatherForecasting     Section = "weather-forecasting"
	RestaurantHotelPlanner Section = "restaurant-hotel-planner"
)

// SectionInfo describes a section for the sidebar.
type SectionInfo struct {
	ID      Section `json:"id"`
	Title   string  `json:"title"`
	Heading string  `json:"heading"`
}

var sections = []SectionInfo{
	{ID: LocationFinder, Title: "Location Finder", Heading: "Tour Bot"},
	{ID: TripPlanner, Title: "Trip Planner", Heading: "Planner Bot"},
	{ID: WeatherForecasting, Title: "Weather Forecasting", Heading: "Weather"},
	{ID: RestaurantHotelPlanner, Title: "Restaurant & Hotel Planner", Heading: "Accommodation Bot"},
}

// Sections lists every section in sidebar order.
func Sections() []SectionInfo {
	return append([]SectionInfo(nil), sections...)
}

// ParseSection validates a section id.
func ParseSection(raw string) (Section, error) {
	candidate := Section(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := infoFor(candidate); ok {
		return candidate, nil
	}
	return "", apperrors.Wrap(apperrors.CodeInvalidInput, "unknown section "+strings.TrimSpace(raw), nil)
}

func infoFor(section Section) (SectionInfo, bool) {
	for _, info := range sections {
		if info.ID == section {
			return info, true
		}
	}
	return SectionInfo{}, false
}
