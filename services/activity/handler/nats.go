package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/gavraq/lifetrack/internal/pkg/constants"
	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/models"
	natspkg "github.com/gavraq/lifetrack/internal/pkg/nats"
	"github.com/gavraq/lifetrack/services/activity"
)

// NatsHandler consumes ping batches pushed by the upstream tracker
type NatsHandler struct {
	activityUC activity.ActivityUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new activity NATS handler
func NewNatsHandler(activityUC activity.ActivityUC, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		activityUC: activityUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to all subjects the activity service consumes
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectPingBatch, func(msg *nats.Msg) {
		if err := h.handlePingBatch(msg.Data); err != nil {
			logger.Error("failed to handle ping batch",
				logger.String("subject", msg.Subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectPingBatch, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("activity consumers initialized",
		logger.String("subject", constants.SubjectPingBatch))
	return nil
}

// Drain unsubscribes all consumers, letting in-flight handlers finish
func (h *NatsHandler) Drain() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("failed to drain subscription", logger.Err(err))
		}
	}
}

// handlePingBatch ingests a pushed batch and immediately re-runs detection
// for that user and day
func (h *NatsHandler) handlePingBatch(data []byte) error {
	var batch models.PingBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("failed to unmarshal ping batch: %w", err)
	}

	ctx := context.Background()
	logger.InfoCtx(ctx, "received ping batch",
		logger.String("user_id", batch.UserID),
		logger.String("date", batch.Date),
		logger.Int("pings", len(batch.Pings)))

	if err := h.activityUC.IngestPings(ctx, &batch); err != nil {
		return fmt.Errorf("failed to ingest pings: %w", err)
	}

	date, err := models.ParseDate(batch.Date)
	if err != nil {
		date = models.Now()
	}

	result, err := h.activityUC.DetectActivities(ctx, batch.UserID, batch.DeviceID, date, nil)
	if err != nil {
		return fmt.Errorf("failed to run detection: %w", err)
	}

	logger.InfoCtx(ctx, "detection completed for pushed batch",
		logger.String("user_id", batch.UserID),
		logger.Int("sessions", len(result.Sessions)),
		logger.Int("skipped_pings", result.SkippedPings))
	return nil
}
