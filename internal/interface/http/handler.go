package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/trip-planner/internal/domain/navigation"
	"github.com/yanqian/trip-planner/internal/domain/staging"
	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
	"github.com/yanqian/trip-planner/internal/domain/weather"
	"github.com/yanqian/trip-planner/internal/infra/config"
	apperrors "github.com/yanqian/trip-planner/pkg/errors"
)

// Handler wires the HTTP transport to the navigation shell of each session.
type Handler struct {
	registry       *navigation.Registry
	trips          tripplanner.Service
	cookieName     string
	cookieMaxAge   int
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, registry *navigation.Registry, trips tripplanner.Service, logger *slog.Logger) *Handler {
	return &Handler{
		registry:       registry,
		trips:          trips,
		cookieName:     cfg.Session.CookieName,
		cookieMaxAge:   int(cfg.Session.IdleTTL.Seconds()),
		maxUploadBytes: cfg.HTTP.MaxUploadBytes,
		logger:         logger.With("component", "http.handler"),
	}
}

type selectRequest struct {
	Section string `json:"section" binding:"required"`
}

type tripRequest struct {
	Prompt        string `json:"prompt"`
	AddToCalendar bool   `json:"addToCalendar"`
	StartDate     string `json:"startDate"`
}

type weatherRequest struct {
	City string `json:"city"`
}

type diningRequest struct {
	Location string `json:"location"`
}

// ListSections returns the sidebar entries and the session's current state.
func (h *Handler) ListSections(c *gin.Context) {
	shell := h.session(c)
	c.JSON(http.StatusOK, gin.H{
		"sections": navigation.Sections(),
		"state":    shell.State(),
		"calendar": h.trips.CalendarStatus(),
	})
}

// SelectSection switches the active section.
func (h *Handler) SelectSection(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	section, err := navigation.ParseSection(req.Section)
	if err != nil {
		abortWithError(c, toHTTPError(err))
		return
	}
	shell := h.session(c)
	if err := shell.Select(section); err != nil {
		abortWithError(c, toHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, shell.State())
}

// RunLocationFinder identifies the place shown in the uploaded image.
func (h *Handler) RunLocationFinder(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	var in navigation.Input
	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "failed to read upload", err))
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "failed to read file", err))
			return
		}
		in.Image = &staging.RawImage{
			Filename:     fileHeader.Filename,
			DeclaredType: fileHeader.Header.Get("Content-Type"),
			Data:         data,
		}
	case isTooLarge(err):
		abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large", "uploaded image is too large", err))
		return
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// An absent image is reported by the section itself.
	default:
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	h.dispatch(c, navigation.LocationFinder, in)
}

// RunTripPlanner drafts an itinerary and optionally books it.
func (h *Handler) RunTripPlanner(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.dispatch(c, navigation.TripPlanner, navigation.Input{
		Text:          req.Prompt,
		AddToCalendar: req.AddToCalendar,
		StartDate:     req.StartDate,
	})
}

// RunWeatherForecasting renders the forecast for a city.
func (h *Handler) RunWeatherForecasting(c *gin.Context) {
	var req weatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.dispatch(c, navigation.WeatherForecasting, navigation.Input{Text: req.City})
}

// RunRestaurantHotelPlanner recommends places to eat and stay.
func (h *Handler) RunRestaurantHotelPlanner(c *gin.Context) {
	var req diningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.dispatch(c, navigation.RestaurantHotelPlanner, navigation.Input{Text: req.Location})
}

// CalendarStatus reports whether trips can be booked.
func (h *Handler) CalendarStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.trips.CalendarStatus())
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) dispatch(c *gin.Context, section navigation.Section, in navigation.Input) {
	shell := h.session(c)
	out, err := shell.Dispatch(c.Request.Context(), section, in)
	if err != nil {
		abortWithError(c, toHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) session(c *gin.Context) *navigation.Shell {
	current, _ := c.Cookie(h.cookieName)
	id, shell := h.registry.Acquire(current)
	if id != current {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookieName, id, h.cookieMaxAge, "/", "", false, true)
	}
	return shell
}

func toHTTPError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	httpErr := NewHTTPError(statusFor(code), code, errMessage(err), err)
	if code == "" {
		httpErr.Code = "internal_error"
	}
	var statusErr *weather.StatusError
	if errors.As(err, &statusErr) {
		httpErr.Details = map[string]any{
			"statusCode": statusErr.StatusCode,
			"body":       statusErr.Body,
		}
	}
	return httpErr
}

func statusFor(code string) int {
	switch code {
	case apperrors.CodeMissingInput, apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.CodeParse:
		return http.StatusUnprocessableEntity
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeProvider, apperrors.CodeWeatherStatus, apperrors.CodeWeatherData:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
