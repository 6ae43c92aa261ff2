package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gavraq/lifetrack/internal/pkg/constants"
	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/pkg/retry"
	"github.com/gavraq/lifetrack/services/activity"
)

// Publisher is the publish side of the message bus client
type Publisher interface {
	Publish(subject string, data []byte) error
}

type activityGW struct {
	pub      Publisher
	retryCfg retry.Config
}

// NewActivityGW creates a new activity gateway
func NewActivityGW(pub Publisher) activity.ActivityGW {
	return &activityGW{
		pub:      pub,
		retryCfg: retry.DefaultConfig(),
	}
}

// PublishActivityDetected publishes a detected session to the per-type
// subject, retrying transient publish failures
func (g *activityGW) PublishActivityDetected(ctx context.Context, session *models.ActivitySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal activity session: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectActivityDetected, session.ActivityType)
	if err := retry.Do(ctx, g.retryCfg, func() error {
		return g.pub.Publish(subject, data)
	}); err != nil {
		return fmt.Errorf("failed to publish activity event: %w", err)
	}

	logger.InfoCtx(ctx, "published activity event",
		logger.String("subject", subject),
		logger.String("session_id", session.ID))
	return nil
}
