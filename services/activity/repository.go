package activity

import (
	"context"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gavraq/lifetrack/services/activity PingRepo,SessionRepo

// PingRepo defines the interface for GPS ping data access operations
type PingRepo interface {
	StorePings(ctx context.Context, userID string, deviceID string, date time.Time, pings []models.Ping) error
	GetPingsForDate(ctx context.Context, userID string, deviceID string, date time.Time) ([]models.Ping, error)
}

// SessionRepo defines the interface for activity session persistence
type SessionRepo interface {
	UpsertSessions(ctx context.Context, sessions []*models.ActivitySession) error
	GetSessionsByDate(ctx context.Context, userID string, date time.Time) ([]*models.ActivitySession, error)
}
