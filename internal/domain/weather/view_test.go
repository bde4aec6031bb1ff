package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderLabels(t *testing.T) {
	entries := threeHourly(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 17)
	entries[4].Precipitation = 0.42
	snapshot, err := BuildSnapshot(Forecast{City: "London", Country: "GB", Entries: entries})
	require.NoError(t, err)

	now := time.Date(2024, 7, 1, 15, 4, 0, 0, time.UTC)
	view := Render(snapshot, now)

	require.Equal(t, "London", view.City)
	require.Equal(t, "GB", view.Country)
	require.Equal(t, "Monday, 03:04 PM", view.Current.Observed)
	require.Equal(t, "Light rain", view.Current.Description)
	require.Equal(t, "22°C", view.Current.TemperatureLabel)
	require.Equal(t, "60%", view.Current.HumidityLabel)
	require.Equal(t, "3.4 m/s", view.Current.WindLabel)
	require.Equal(t, "0.42 mm", view.Current.PrecipitationLabel)

	require.Len(t, view.Hourly, 8)
	require.Equal(t, "12 AM", view.Hourly[0].Label)
	require.Equal(t, "03 AM", view.Hourly[1].Label)
	require.Equal(t, "09 PM", view.Hourly[7].Label)
	require.Equal(t, "20.5°C", view.Hourly[1].TemperatureLabel)

	require.Len(t, view.Daily, 2)
	require.Equal(t, "Tue", view.Daily[0].Label)
	require.Equal(t, "Wed", view.Daily[1].Label)
}

func TestRenderUsesCityOffset(t *testing.T) {
	entries := threeHourly(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), 1)
	snapshot, err := BuildSnapshot(Forecast{City: "Mumbai", UTCOffset: 5*time.Hour + 30*time.Minute, Entries: entries})
	require.NoError(t, err)

	view := Render(snapshot, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "05 AM", view.Hourly[0].Label)
	require.Equal(t, "2024-07-01T05:30:00+05:30", view.Hourly[0].Time)
	require.Equal(t, "Monday, 05:30 AM", view.Current.Observed)
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Overcast clouds", capitalize("overcast CLOUDS"))
	require.Equal(t, "", capitalize("  "))
	require.Equal(t, "Éclaircies", capitalize("éclaircies"))
}
