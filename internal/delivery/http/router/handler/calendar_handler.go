package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tattooer/internal/delivery/http/response"
	"tattooer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalendarHandler holds dependencies for the aggregated calendar endpoints.
type CalendarHandler struct {
	uc     usecase.CalendarUsecase
	logger *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler, injected by Fx.
func NewCalendarHandler(uc usecase.CalendarUsecase, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCalendar handles GET /artists/:id/calendar?start=...&end=...
// Start and end accept RFC 3339 timestamps or plain dates (2006-01-02).
func (h *CalendarHandler) GetCalendar(c echo.Context) error {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artist id")
	}

	start, err := parseRangeBound(c.QueryParam("start"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid start parameter")
	}
	end, err := parseRangeBound(c.QueryParam("end"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid end parameter")
	}

	output, err := h.uc.EventsInRange(c.Request().Context(), &usecase.EventsInRangeInput{
		ArtistID: artistID,
		Start:    start,
		End:      end,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Events, "Calendar retrieved successfully")
}

// RequestDeviceAccess handles POST /artists/:id/calendar/device-access.
func (h *CalendarHandler) RequestDeviceAccess(c echo.Context) error {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid artist id")
	}

	granted, err := h.uc.RequestDeviceCalendarAccess(c.Request().Context(), artistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"granted": granted}, "Device calendar access probed")
}

func parseRangeBound(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("missing range bound")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
