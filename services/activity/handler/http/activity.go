package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/utils"
	"github.com/gavraq/lifetrack/services/activity"
)

// ActivityHandler handles activity HTTP requests
type ActivityHandler struct {
	activityUC activity.ActivityUC
}

// NewActivityHandler creates a new activity HTTP handler
func NewActivityHandler(activityUC activity.ActivityUC) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// IngestPings handles POST /internal/users/:id/pings
func (h *ActivityHandler) IngestPings(c echo.Context) error {
	var batch models.PingBatch
	if err := c.Bind(&batch); err != nil {
		return utils.BadRequestResponse(c, "invalid ping batch payload")
	}
	batch.UserID = c.Param("id")

	if err := h.activityUC.IngestPings(c.Request().Context(), &batch); err != nil {
		if errors.Is(err, activity.ErrEmptyBatch) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to ingest pings")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "pings accepted", map[string]int{
		"received": len(batch.Pings),
	})
}

// DetectActivities handles POST /internal/users/:id/detect
func (h *ActivityHandler) DetectActivities(c echo.Context) error {
	userID := c.Param("id")
	deviceID := c.QueryParam("device_id")

	date, err := models.ParseDate(c.QueryParam("date"))
	if err != nil {
		return utils.BadRequestResponse(c, "date must be YYYY-MM-DD")
	}

	var types []string
	if raw := c.QueryParam("types"); raw != "" {
		types = strings.Split(raw, ",")
	}

	result, err := h.activityUC.DetectActivities(c.Request().Context(), userID, deviceID, date, types)
	if err != nil {
		if errors.Is(err, activity.ErrUnknownActivityType) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "detection failed")
	}
	if result.SourceError != "" {
		return utils.BadGatewayResponse(c, "ping source unavailable: "+result.SourceError)
	}

	return utils.SuccessResponse(c, http.StatusOK, "detection completed", result)
}

// GetSessions handles GET /internal/users/:id/sessions and the operator read
// on /api/users/:id/sessions
func (h *ActivityHandler) GetSessions(c echo.Context) error {
	userID := c.Param("id")

	date, err := models.ParseDate(c.QueryParam("date"))
	if err != nil {
		return utils.BadRequestResponse(c, "date must be YYYY-MM-DD")
	}

	sessions, err := h.activityUC.GetSessions(c.Request().Context(), userID, date)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to load sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "sessions retrieved", sessions)
}
