package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

func TestBuildSnapshotSeries(t *testing.T) {
	forecast := Forecast{City: "Pune", Entries: threeHourly(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 40)}

	snapshot, err := BuildSnapshot(forecast)
	require.NoError(t, err)
	require.Len(t, snapshot.Hourly, HourlyPoints)
	require.Equal(t, forecast.Entries[:8], snapshot.Hourly)

	require.Len(t, snapshot.Daily, 4)
	for i, idx := range []int{8, 16, 24, 32} {
		require.Equal(t, forecast.Entries[idx], snapshot.Daily[i])
	}

	require.Equal(t, 12, snapshot.Current.Time.Hour())
	require.Equal(t, forecast.Entries[4], snapshot.Current)
}

func TestBuildSnapshotFallsBackToFirstEntry(t *testing.T) {
	entries := threeHourly(time.Date(2024, 7, 1, 13, 0, 0, 0, time.UTC), 3)
	snapshot, err := BuildSnapshot(Forecast{Entries: entries})
	require.NoError(t, err)
	require.Equal(t, entries[0], snapshot.Current)
	require.Len(t, snapshot.Hourly, 3)
	require.Empty(t, snapshot.Daily)
}

func TestBuildSnapshotEmpty(t *testing.T) {
	_, err := BuildSnapshot(Forecast{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeWeatherData))
}

func threeHourly(start time.Time, n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, Entry{
			Time:        start.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: 20 + float64(i)/2,
			Humidity:    60,
			Description: "light rain",
			WindSpeed:   3.4,
		})
	}
	return entries
}
