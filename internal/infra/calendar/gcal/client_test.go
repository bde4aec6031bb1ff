package gcal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
)

func TestNewClientDisabledWithoutCredentials(t *testing.T) {
	client := NewClient(context.Background(), Config{CalendarID: "primary"}, newTestLogger())
	status := client.Status()
	require.False(t, status.Enabled)
	require.Equal(t, "Google Calendar credentials not set up.", status.Message)

	_, err := client.CreateEvent(context.Background(), tripplanner.CalendarEvent{})
	require.ErrorIs(t, err, errDisabled)
}

func TestNewClientDisabledWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	client := NewClient(context.Background(), Config{CredentialsFile: path, CalendarID: "primary"}, newTestLogger())
	require.False(t, client.Status().Enabled)
	require.Contains(t, client.Status().Message, "not found")
}

func TestNewClientDisabledWhenCredentialsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	client := NewClient(context.Background(), Config{CredentialsFile: path, CalendarID: "primary"}, newTestLogger())
	require.False(t, client.Status().Enabled)
	require.Contains(t, client.Status().Message, "Invalid calendar credentials")
}

func TestCreateEventInsertsIntoCalendar(t *testing.T) {
	var captured calendar.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/calendars/primary/events", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"evt-1","htmlLink":"https://calendar.google.com/event?eid=evt-1"}`))
	}))
	defer srv.Close()

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	client := newWithService(svc, "primary", newTestLogger())
	require.True(t, client.Status().Enabled)

	loc := time.FixedZone("IST", 5*60*60+30*60)
	ref, err := client.CreateEvent(context.Background(), tripplanner.CalendarEvent{
		Summary:     "Trip to Goa",
		Description: "Day 1: beaches",
		Start:       time.Date(2024, 12, 1, 9, 0, 0, 0, loc),
		End:         time.Date(2024, 12, 4, 17, 0, 0, 0, loc),
		TimeZone:    "Asia/Kolkata",
	})
	require.NoError(t, err)
	require.Equal(t, "evt-1", ref.ID)
	require.Equal(t, "https://calendar.google.com/event?eid=evt-1", ref.Link)

	require.Equal(t, "Trip to Goa", captured.Summary)
	require.Equal(t, "Day 1: beaches", captured.Description)
	require.Equal(t, "2024-12-01T09:00:00", captured.Start.DateTime)
	require.Equal(t, "2024-12-04T17:00:00", captured.End.DateTime)
	require.Equal(t, "Asia/Kolkata", captured.End.TimeZone)
}

func TestCreateEventSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"insufficient permissions"}}`))
	}))
	defer srv.Close()

	svc, err := calendar.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	_, err = newWithService(svc, "primary", newTestLogger()).CreateEvent(context.Background(), tripplanner.CalendarEvent{TimeZone: "UTC"})
	require.ErrorContains(t, err, "insufficient permissions")
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
