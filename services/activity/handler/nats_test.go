package handler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/services/activity/mocks"
)

func testBatch(t *testing.T) []byte {
	t.Helper()
	batch := models.PingBatch{
		UserID:   "user-1",
		DeviceID: "phone-1",
		Date:     "2026-03-14",
		Pings: []models.Ping{
			{Latitude: 37.0143, Longitude: -8.0088, Timestamp: time.Date(2026, 3, 14, 10, 40, 0, 0, time.UTC)},
		},
	}
	data, err := json.Marshal(batch)
	require.NoError(t, err)
	return data
}

func TestHandlePingBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewNatsHandler(mockUC, nil)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	mockUC.EXPECT().
		IngestPings(gomock.Any(), gomock.Any()).
		Return(nil)
	mockUC.EXPECT().
		DetectActivities(gomock.Any(), "user-1", "phone-1", day, nil).
		Return(&models.DetectionResult{UserID: "user-1", Date: "2026-03-14"}, nil)

	assert.NoError(t, h.handlePingBatch(testBatch(t)))
}

func TestHandlePingBatch_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewNatsHandler(mocks.NewMockActivityUC(ctrl), nil)

	assert.Error(t, h.handlePingBatch([]byte("not-json")))
}

func TestHandlePingBatch_IngestFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewNatsHandler(mockUC, nil)

	mockUC.EXPECT().
		IngestPings(gomock.Any(), gomock.Any()).
		Return(errors.New("redis: connection refused"))

	err := h.handlePingBatch(testBatch(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ingest pings")
}

func TestHandlePingBatch_DetectionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockActivityUC(ctrl)
	h := NewNatsHandler(mockUC, nil)

	mockUC.EXPECT().IngestPings(gomock.Any(), gomock.Any()).Return(nil)
	mockUC.EXPECT().
		DetectActivities(gomock.Any(), "user-1", "phone-1", gomock.Any(), nil).
		Return(nil, errors.New("boom"))

	assert.Error(t, h.handlePingBatch(testBatch(t)))
}
