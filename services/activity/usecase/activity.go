package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/pkg/places"
	"github.com/gavraq/lifetrack/services/activity"
	"github.com/gavraq/lifetrack/services/activity/detection"
)

// ActivityUC implements the activity.ActivityUC interface
type ActivityUC struct {
	detectors   []*detection.Detector
	pingRepo    activity.PingRepo
	sessionRepo activity.SessionRepo
	gw          activity.ActivityGW
}

// NewActivityUC creates the activity use case with one detector per
// configured activity type
func NewActivityUC(
	cfg *models.Config,
	registry *places.Registry,
	pingRepo activity.PingRepo,
	sessionRepo activity.SessionRepo,
	gw activity.ActivityGW,
) activity.ActivityUC {
	return &ActivityUC{
		detectors: []*detection.Detector{
			detection.NewGolfDetector(cfg.Detection, registry),
			detection.NewDogWalkDetector(cfg.Detection, registry),
		},
		pingRepo:    pingRepo,
		sessionRepo: sessionRepo,
		gw:          gw,
	}
}

// IngestPings validates and stores a pushed batch of pings. Malformed pings
// are dropped; a batch with no usable ping at all is rejected.
func (uc *ActivityUC) IngestPings(ctx context.Context, batch *models.PingBatch) error {
	valid := make([]models.Ping, 0, len(batch.Pings))
	for _, p := range batch.Pings {
		if p.IsValid() {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return activity.ErrEmptyBatch
	}
	if skipped := len(batch.Pings) - len(valid); skipped > 0 {
		logger.WarnCtx(ctx, "dropping malformed pings from batch",
			logger.String("user_id", batch.UserID),
			logger.Int("skipped", skipped))
	}

	date, err := models.ParseDate(batch.Date)
	if err != nil {
		// fall back to bucketing by the first usable fix
		date = valid[0].Timestamp
	}

	if err := uc.pingRepo.StorePings(ctx, batch.UserID, batch.DeviceID, date, valid); err != nil {
		return fmt.Errorf("failed to ingest pings: %w", err)
	}
	return nil
}

// DetectActivities fetches the day's pings and runs the requested detectors.
// A ping source failure yields a zero-session result carrying the error
// rather than a failed call; persistence and publishing failures are logged
// and do not void the detection outcome.
func (uc *ActivityUC) DetectActivities(ctx context.Context, userID string, deviceID string, date time.Time, types []string) (*models.DetectionResult, error) {
	result := &models.DetectionResult{
		UserID:   userID,
		DeviceID: deviceID,
		Date:     models.DateOf(date),
	}

	detectors, err := uc.selectDetectors(types)
	if err != nil {
		return nil, err
	}

	pings, err := uc.pingRepo.GetPingsForDate(ctx, userID, deviceID, date)
	if err != nil {
		logger.WarnCtx(ctx, "ping source unavailable",
			logger.String("user_id", userID),
			logger.Err(err))
		result.SourceError = err.Error()
		return result, nil
	}

	for _, d := range detectors {
		sessions, skipped := d.Detect(userID, deviceID, pings)
		if skipped > result.SkippedPings {
			result.SkippedPings = skipped
		}
		for i := range sessions {
			sessions[i].ID = sessionID(&sessions[i])
			result.Sessions = append(result.Sessions, sessions[i])
		}
	}

	if len(result.Sessions) == 0 {
		return result, nil
	}

	persisted := make([]*models.ActivitySession, len(result.Sessions))
	for i := range result.Sessions {
		persisted[i] = &result.Sessions[i]
	}
	if err := uc.sessionRepo.UpsertSessions(ctx, persisted); err != nil {
		logger.ErrorCtx(ctx, "failed to persist detected sessions",
			logger.String("user_id", userID),
			logger.Err(err))
	}

	for _, s := range persisted {
		if err := uc.gw.PublishActivityDetected(ctx, s); err != nil {
			logger.ErrorCtx(ctx, "failed to publish activity event",
				logger.String("session_id", s.ID),
				logger.Err(err))
		}
	}

	return result, nil
}

// GetSessions returns the persisted sessions for one user and day
func (uc *ActivityUC) GetSessions(ctx context.Context, userID string, date time.Time) ([]*models.ActivitySession, error) {
	sessions, err := uc.sessionRepo.GetSessionsByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return sessions, nil
}

func (uc *ActivityUC) selectDetectors(types []string) ([]*detection.Detector, error) {
	if len(types) == 0 {
		return uc.detectors, nil
	}

	byType := make(map[string]*detection.Detector, len(uc.detectors))
	for _, d := range uc.detectors {
		byType[d.ActivityType()] = d
	}

	selected := make([]*detection.Detector, 0, len(types))
	for _, t := range types {
		d, ok := byType[t]
		if !ok {
			return nil, fmt.Errorf("%w: %s", activity.ErrUnknownActivityType, t)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// sessionID derives a stable identifier from the session's natural key so a
// re-run of the same day produces the same IDs
func sessionID(s *models.ActivitySession) string {
	key := fmt.Sprintf("%s|%s|%s", s.UserID, s.ActivityType, s.StartTime.UTC().Format(time.RFC3339))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
