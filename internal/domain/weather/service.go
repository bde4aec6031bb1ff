package weather

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/yanqian/trip-planner/pkg/errors"
	"github.com/yanqian/trip-planner/pkg/util"
)

// Service exposes the Weather Forecasting section.
type Service interface {
	Forecast(ctx context.Context, req Request) (View, error)
}

type Client interface {
	Fetch(ctx context.Context, city string) (Forecast, error)
}

type service struct {
	client Client
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the weather section.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "weather.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Forecast(ctx context.Context, req Request) (View, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return View{}, apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil)
	}

	forecast, err := s.client.Fetch(ctx, city)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			code := apperrors.CodeWeatherStatus
			if statusErr.StatusCode == http.StatusNotFound {
				code = apperrors.CodeNotFound
			}
			return View{}, apperrors.Wrap(code, "failed to retrieve weather data", statusErr)
		}
		if apperrors.CodeOf(err) != "" {
			return View{}, err
		}
		return View{}, apperrors.Wrap(apperrors.CodeProvider, "failed to retrieve weather data", err)
	}

	snapshot, err := BuildSnapshot(forecast)
	if err != nil {
		return View{}, err
	}
	if snapshot.City == "" {
		snapshot.City = city
	}
	s.logger.Info("weather forecast fetched", "city", snapshot.City, "entries", len(forecast.Entries))

	return Render(snapshot, s.now()), nil
}
