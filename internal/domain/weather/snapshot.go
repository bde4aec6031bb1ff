package weather

import (
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// currentHourUTC is the reading preferred as "current".
const currentHourUTC = 12

// BuildSnapshot picks the current reading, the first HourlyPoints entries and
// every DailyStride-th entry after the first stride.
func BuildSnapshot(forecast Forecast) (Snapshot, error) {
	if len(forecast.Entries) == 0 {
		return Snapshot{}, apperrors.Wrap(apperrors.CodeWeatherData, "weather provider returned no forecast entries", nil)
	}

	hourly := forecast.Entries
	if len(hourly) > HourlyPoints {
		hourly = hourly[:HourlyPoints]
	}

	daily := make([]Entry, 0, len(forecast.Entries)/DailyStride)
	for i := DailyStride; i < len(forecast.Entries); i += DailyStride {
		daily = append(daily, forecast.Entries[i])
	}

	return Snapshot{
		City:      forecast.City,
		Country:   forecast.Country,
		UTCOffset: forecast.UTCOffset,
		Current:   pickCurrent(forecast.Entries),
		Hourly:    append([]Entry(nil), hourly...),
		Daily:     daily,
	}, nil
}

func pickCurrent(entries []Entry) Entry {
	for _, entry := range entries {
		if entry.Time.UTC().Hour() == currentHourUTC {
			return entry
		}
	}
	return entries[0]
}
