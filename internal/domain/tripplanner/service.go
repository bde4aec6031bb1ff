package tripplanner

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

const calendarUnavailableMessage = "Google Calendar credentials not set up."

// Service plans trips and optionally books them into a calendar.
type Service interface {
	Plan(ctx context.Context, req Request) (Response, error)
	CalendarStatus() CalendarStatus
}

type TextClient interface {
	CompleteText(ctx context.Context, instruction, input string) (completion.Completion, error)
}

type CalendarClient interface {
	Status() CalendarStatus
	CreateEvent(ctx context.Context, event CalendarEvent) (EventRef, error)
}

type service struct {
	cfg      Config
	client   TextClient
	calendar CalendarClient
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewService wires up the Trip Planner section. calendar may be nil.
func NewService(cfg Config, client TextClient, calendar CalendarClient, logger *slog.Logger) Service {
	logger = logger.With("component", "tripplanner.service")
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Warn("unknown calendar time zone, using UTC", "time_zone", cfg.TimeZone, "error", err)
		loc = time.UTC
	}
	return &service{
		cfg:      cfg,
		client:   client,
		calendar: calendar,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}
}

func (s *service) CalendarStatus() CalendarStatus {
	if s.calendar == nil {
		return CalendarStatus{Message: calendarUnavailableMessage}
	}
	return s.calendar.Status()
}

func (s *service) Plan(ctx context.Context, req Request) (Response, error) {
	input := staging.StageText(req.Prompt)
	status := s.CalendarStatus()

	// The date range is resolved before the model call so that a bad day
	// count is reported without spending a completion.
	var rng DateRange
	bookable := req.AddToCalendar && status.Enabled
	if bookable {
		days, err := ParseDayCount(input)
		if err != nil {
			return Response{}, err
		}
		start, err := staging.StageDate(req.StartDate, s.now(), s.location)
		if err != nil {
			return Response{}, err
		}
		rng = NewDateRange(start, days)
	}

	begin := time.Now()
	result, err := s.client.CompleteText(ctx, s.cfg.Prompt, input)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeProvider, "trip planning request failed", err)
	}
	elapsed := time.Since(begin)
	s.logger.Info("trip planned", "model", result.Model, "latency_ms", elapsed.Milliseconds(), "calendar_requested", req.AddToCalendar)

	resp := Response{
		Itinerary:  strings.TrimSpace(result.Text),
		Model:      result.Model,
		DurationMs: elapsed.Milliseconds(),
		TokenUsage: result.Usage.Ptr(),
	}

	switch {
	case !req.AddToCalendar:
	case !bookable:
		resp.Calendar = &CalendarOutcome{Message: status.Message}
	default:
		resp.Calendar = s.book(ctx, BuildEvent(input, resp.Itinerary, rng, s.location.String()))
	}
	return resp, nil
}

// book never fails the request: a calendar error is reported in the outcome.
func (s *service) book(ctx context.Context, event CalendarEvent) *CalendarOutcome {
	outcome := &CalendarOutcome{
		Attempted: true,
		Summary:   event.Summary,
		Start:     event.Start.Format(DateTimeLayout),
		End:       event.End.Format(DateTimeLayout),
		TimeZone:  event.TimeZone,
	}
	ref, err := s.calendar.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Warn("calendar event creation failed", "summary", event.Summary, "error", err)
		outcome.Message = apperrors.Wrap(apperrors.CodeProvider, "failed to add event to calendar", err).Error()
		return outcome
	}
	s.logger.Info("calendar event created", "event_id", ref.ID)
	outcome.Created = true
	outcome.EventID = ref.ID
	outcome.Link = ref.Link
	outcome.Message = "Event created"
	return outcome
}
