package navigation

import (
	"context"

	"github.com/yanqian/trip-planner/internal/domain/dining"
	"github.com/yanqian/trip-planner/internal/domain/locator"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
	"github.com/yanqian/trip-planner/internal/domain/weather"
)

// Input is the raw form state of whichever section is active.
type Input struct {
	Text          string
	Image         *staging.RawImage
	StartDate     string
	AddToCalendar bool
}

// Output is the rendered result of one section run. Only the fields of the
// section that produced it are set.
type Output struct {
	Section  Section               `json:"section"`
	Heading  string                `json:"heading"`
	Location *locator.Response     `json:"location,omitempty"`
	Trip     *tripplanner.Response `json:"trip,omitempty"`
	Weather  *weather.View         `json:"weather,omitempty"`
	Dining   *dining.Response      `json:"dining,omitempty"`
}

// Controller drives a single request/response cycle for its section.
type Controller interface {
	Run(ctx context.Context, in Input) (Output, error)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx context.Context, in Input) (Output, error)

// Run implements Controller.
func (f ControllerFunc) Run(ctx context.Context, in Input) (Output, error) {
	return f(ctx, in)
}

// Controllers maps every section to its controller.
type Controllers map[Section]Controller

// NewControllers binds the section services to the shell.
func NewControllers(loc locator.Service, trips tripplanner.Service, forecasts weather.Service, places dining.Service) Controllers {
	return Controllers{
		LocationFinder: ControllerFunc(func(ctx context.Context, in Input) (Output, error) {
			image, err := staging.StageImage(in.Image)
			if err != nil {
				return Output{}, err
			}
			resp, err := loc.Identify(ctx, image)
			if err != nil {
				return Output{}, err
			}
			return Output{Location: &resp}, nil
		}),
		TripPlanner: ControllerFunc(func(ctx context.Context, in Input) (Output, error) {
			resp, err := trips.Plan(ctx, tripplanner.Request{
				Prompt:        in.Text,
				AddToCalendar: in.AddToCalendar,
				StartDate:     in.StartDate,
			})
			if err != nil {
				return Output{}, err
			}
			return Output{Trip: &resp}, nil
		}),
		WeatherForecasting: ControllerFunc(func(ctx context.Context, in Input) (Output, error) {
			view, err := forecasts.Forecast(ctx, weather.Request{City: in.Text})
			if err != nil {
				return Output{}, err
			}
			return Output{Weather: &view}, nil
		}),
		RestaurantHotelPlanner: ControllerFunc(func(ctx context.Context, in Input) (Output, error) {
			resp, err := places.Recommend(ctx, dining.Request{Location: in.Text})
			if err != nil {
				return Output{}, err
			}
			return Output{Dining: &resp}, nil
		}),
	}
}
