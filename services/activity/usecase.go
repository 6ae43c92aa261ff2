package activity

import (
	"context"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gavraq/lifetrack/services/activity ActivityUC

// ActivityUC defines the interface for activity detection business logic
type ActivityUC interface {
	// Ping ingestion operations
	IngestPings(ctx context.Context, batch *models.PingBatch) error

	// Detection operations. An empty types slice runs every configured
	// detector.
	DetectActivities(ctx context.Context, userID string, deviceID string, date time.Time, types []string) (*models.DetectionResult, error)

	// Session query operations
	GetSessions(ctx context.Context, userID string, date time.Time) ([]*models.ActivitySession, error)
}
