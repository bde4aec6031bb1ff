package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/trip-planner/internal/domain/dining"
	"github.com/yanqian/trip-planner/internal/domain/locator"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
	"github.com/yanqian/trip-planner/internal/domain/weather"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

func TestLocationControllerRequiresImage(t *testing.T) {
	loc := &stubLocator{}
	controllers := NewControllers(loc, &stubTrips{}, &stubWeather{}, &stubDining{})

	_, err := controllers[LocationFinder].Run(context.Background(), Input{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeMissingInput))
	require.Zero(t, loc.calls)

	out, err := controllers[LocationFinder].Run(context.Background(), Input{Image: &staging.RawImage{DeclaredType: "image/jpeg", Data: []byte{0xff, 0xd8}}})
	require.NoError(t, err)
	require.Equal(t, "somewhere", out.Location.Description)
	require.Equal(t, 1, loc.calls)
}

func TestControllersMapInputs(t *testing.T) {
	trips := &stubTrips{}
	wx := &stubWeather{}
	places := &stubDining{}
	controllers := NewControllers(&stubLocator{}, trips, wx, places)

	_, err := controllers[TripPlanner].Run(context.Background(), Input{Text: "Paris for 5 days", AddToCalendar: true, StartDate: "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, tripplanner.Request{Prompt: "Paris for 5 days", AddToCalendar: true, StartDate: "2024-01-01"}, trips.last)

	out, err := controllers[WeatherForecasting].Run(context.Background(), Input{Text: "Oslo"})
	require.NoError(t, err)
	require.Equal(t, "Oslo", wx.last.City)
	require.Equal(t, "Oslo", out.Weather.City)

	_, err = controllers[RestaurantHotelPlanner].Run(context.Background(), Input{Text: "Kyoto"})
	require.NoError(t, err)
	require.Equal(t, "Kyoto", places.last.Location)
}

type stubLocator struct{ calls int }

func (s *stubLocator) Identify(ctx context.Context, image staging.UploadedImage) (locator.Response, error) {
	s.calls++
	return locator.Response{Description: "somewhere"}, nil
}

type stubTrips struct{ last tripplanner.Request }

func (s *stubTrips) Plan(ctx context.Context, req tripplanner.Request) (tripplanner.Response, error) {
	s.last = req
	return tripplanner.Response{Itinerary: "plan"}, nil
}

func (s *stubTrips) CalendarStatus() tripplanner.CalendarStatus {
	return tripplanner.CalendarStatus{}
}

type stubWeather struct{ last weather.Request }

func (s *stubWeather) Forecast(ctx context.Context, req weather.Request) (weather.View, error) {
	s.last = req
	return weather.View{City: req.City}, nil
}

type stubDining struct{ last dining.Request }

func (s *stubDining) Recommend(ctx context.Context, req dining.Request) (dining.Response, error) {
	s.last = req
	return dining.Response{Recommendations: "list"}, nil
}
