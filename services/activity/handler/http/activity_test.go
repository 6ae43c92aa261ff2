package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/services/activity"
	"github.com/gavraq/lifetrack/services/activity/mocks"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIngestPings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	body := `{"device_id":"phone-1","date":"2026-03-14","pings":[{"latitude":37.0143,"longitude":-8.0088,"timestamp":"2026-03-14T10:40:00Z"}]}`
	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/pings", body)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	mockUC.EXPECT().
		IngestPings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.PingBatch) error {
			assert.Equal(t, "user-1", batch.UserID)
			assert.Len(t, batch.Pings, 1)
			return nil
		})

	require.NoError(t, h.IngestPings(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestIngestPings_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/pings", `{"pings":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	mockUC.EXPECT().
		IngestPings(gomock.Any(), gomock.Any()).
		Return(activity.ErrEmptyBatch)

	require.NoError(t, h.IngestPings(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/detect?date=2026-03-14&device_id=phone-1&types=golf", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	result := &models.DetectionResult{
		UserID: "user-1",
		Date:   "2026-03-14",
		Sessions: []models.ActivitySession{
			{ID: "abc", ActivityType: "golf", Confidence: models.ConfidenceHigh},
		},
	}
	mockUC.EXPECT().
		DetectActivities(gomock.Any(), "user-1", "phone-1", day, []string{"golf"}).
		Return(result, nil)

	require.NoError(t, h.DetectActivities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"activity_type":"golf"`)
}

func TestDetectActivities_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewActivityHandler(mocks.NewMockActivityUC(ctrl))

	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/detect?date=14-03-2026", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	require.NoError(t, h.DetectActivities(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectActivities_SourceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/detect?date=2026-03-14", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	mockUC.EXPECT().
		DetectActivities(gomock.Any(), "user-1", "", gomock.Any(), nil).
		Return(&models.DetectionResult{SourceError: "redis: connection refused"}, nil)

	require.NoError(t, h.DetectActivities(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDetectActivities_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/internal/users/user-1/detect?date=2026-03-14&types=surfing", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	mockUC.EXPECT().
		DetectActivities(gomock.Any(), "user-1", "", gomock.Any(), []string{"surfing"}).
		Return(nil, activity.ErrUnknownActivityType)

	require.NoError(t, h.DetectActivities(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/internal/users/user-1/sessions?date=2026-03-14", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	mockUC.EXPECT().
		GetSessions(gomock.Any(), "user-1", day).
		Return([]*models.ActivitySession{{ID: "abc", ActivityType: "dog-walk"}}, nil)

	require.NoError(t, h.GetSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dog-walk")
}

func TestGetSessions_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewActivityHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/internal/users/user-1/sessions?date=2026-03-14", "")
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	mockUC.EXPECT().
		GetSessions(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, errors.New("pq: connection refused"))

	require.NoError(t, h.GetSessions(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
