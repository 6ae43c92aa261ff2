package activity

import (
	"context"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gavraq/lifetrack/services/activity ActivityGW

// ActivityGW defines the interface for activity gateway operations
type ActivityGW interface {
	// PublishActivityDetected publishes a detected session event to NATS
	PublishActivityDetected(ctx context.Context, session *models.ActivitySession) error
}
