package gcal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
)

const notConfiguredMessage = "Google Calendar credentials not set up."

var errDisabled = errors.New("calendar integration is disabled")

// Config locates the service account key and the target calendar.
type Config struct {
	CredentialsFile string
	CalendarID      string
}

// Client inserts trip events through the Google Calendar API.
// A Client built without usable credentials stays disabled and reports why.
type Client struct {
	events     *calendar.EventsService
	calendarID string
	status     tripplanner.CalendarStatus
	logger     *slog.Logger
}

// NewClient never fails; credential problems only disable the integration.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) *Client {
	logger = logger.With("component", "gcal.client")

	path := strings.TrimSpace(cfg.CredentialsFile)
	if path == "" {
		logger.Info("calendar integration disabled", "reason", "no credentials configured")
		return disabled(cfg, logger, notConfiguredMessage)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		msg := fmt.Sprintf("Unable to read calendar credentials: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			msg = "Google Calendar service account file not found."
		}
		logger.Warn("calendar integration disabled", "path", path, "error", err)
		return disabled(cfg, logger, msg)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarScope)
	if err != nil {
		logger.Warn("calendar integration disabled", "path", path, "error", err)
		return disabled(cfg, logger, fmt.Sprintf("Invalid calendar credentials: %v", err))
	}

	svc, err := calendar.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		logger.Warn("calendar integration disabled", "error", err)
		return disabled(cfg, logger, fmt.Sprintf("Unable to initialise Google Calendar: %v", err))
	}

	logger.Info("calendar integration enabled", "calendar_id", cfg.CalendarID)
	return newWithService(svc, cfg.CalendarID, logger)
}

func newWithService(svc *calendar.Service, calendarID string, logger *slog.Logger) *Client {
	return &Client{
		events:     svc.Events,
		calendarID: calendarID,
		status:     tripplanner.CalendarStatus{Enabled: true, Message: "Google Calendar is connected."},
		logger:     logger,
	}
}

func disabled(cfg Config, logger *slog.Logger, message string) *Client {
	return &Client{
		calendarID: cfg.CalendarID,
		status:     tripplanner.CalendarStatus{Message: message},
		logger:     logger,
	}
}

// Status reports whether events can be created.
func (c *Client) Status() tripplanner.CalendarStatus {
	return c.status
}

// CreateEvent inserts a timed event into the configured calendar.
func (c *Client) CreateEvent(ctx context.Context, event tripplanner.CalendarEvent) (tripplanner.EventRef, error) {
	if c.events == nil {
		return tripplanner.EventRef{}, errDisabled
	}

	created, err := c.events.Insert(c.calendarID, &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(tripplanner.DateTimeLayout),
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(tripplanner.DateTimeLayout),
			TimeZone: event.TimeZone,
		},
	}).Context(ctx).Do()
	if err != nil {
		return tripplanner.EventRef{}, fmt.Errorf("insert calendar event: %w", err)
	}

	c.logger.Info("calendar event created", "event_id", created.Id, "summary", event.Summary)
	return tripplanner.EventRef{ID: created.Id, Link: created.HtmlLink}, nil
}
