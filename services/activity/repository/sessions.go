package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/models"
)

const upsertSessionQuery = `
	INSERT INTO activity_sessions (
		id, user_id, device_id, activity_type, start_time, end_time,
		duration_hours, confidence, metadata, created_at, updated_at
	) VALUES (
		:id, :user_id, :device_id, :activity_type, :start_time, :end_time,
		:duration_hours, :confidence, :metadata, NOW(), NOW()
	)
	ON CONFLICT (user_id, activity_type, start_time) DO UPDATE SET
		device_id = EXCLUDED.device_id,
		end_time = EXCLUDED.end_time,
		duration_hours = EXCLUDED.duration_hours,
		confidence = EXCLUDED.confidence,
		metadata = EXCLUDED.metadata,
		updated_at = NOW()`

const selectSessionsByDateQuery = `
	SELECT id, user_id, device_id, activity_type, start_time, end_time,
		duration_hours, confidence, metadata
	FROM activity_sessions
	WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
	ORDER BY start_time`

// sessionRow mirrors the activity_sessions table; metadata travels as JSONB
type sessionRow struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	DeviceID      string          `db:"device_id"`
	ActivityType  string          `db:"activity_type"`
	StartTime     time.Time       `db:"start_time"`
	EndTime       time.Time       `db:"end_time"`
	DurationHours float64         `db:"duration_hours"`
	Confidence    string          `db:"confidence"`
	Metadata      json.RawMessage `db:"metadata"`
}

// SessionRepo persists detected activity sessions in Postgres. Upserts key
// on (user, activity type, start time) so re-running detection for a day is
// idempotent.
type SessionRepo struct {
	db *database.PostgresClient
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *database.PostgresClient) *SessionRepo {
	return &SessionRepo{db: db}
}

// UpsertSessions writes the sessions in one transaction
func (r *SessionRepo) UpsertSessions(ctx context.Context, sessions []*models.ActivitySession) error {
	if len(sessions) == 0 {
		return nil
	}

	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range sessions {
		metadata, err := json.Marshal(s.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal session metadata: %w", err)
		}
		row := sessionRow{
			ID:            s.ID,
			UserID:        s.UserID,
			DeviceID:      s.DeviceID,
			ActivityType:  s.ActivityType,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			DurationHours: s.DurationHours,
			Confidence:    string(s.Confidence),
			Metadata:      metadata,
		}
		if _, err := tx.NamedExecContext(ctx, upsertSessionQuery, row); err != nil {
			return fmt.Errorf("failed to upsert session %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sessions: %w", err)
	}
	return nil
}

// GetSessionsByDate returns the user's sessions starting within the given
// calendar day, in chronological order
func (r *SessionRepo) GetSessionsByDate(ctx context.Context, userID string, date time.Time) ([]*models.ActivitySession, error) {
	start, end, err := models.DayBounds(models.DateOf(date))
	if err != nil {
		return nil, err
	}

	var rows []sessionRow
	if err := r.db.GetDB().SelectContext(ctx, &rows, selectSessionsByDateQuery, userID, start, end); err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	sessions := make([]*models.ActivitySession, 0, len(rows))
	for _, row := range rows {
		s := &models.ActivitySession{
			ID:            row.ID,
			UserID:        row.UserID,
			DeviceID:      row.DeviceID,
			ActivityType:  row.ActivityType,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			DurationHours: row.DurationHours,
			Confidence:    models.Confidence(row.Confidence),
		}
		if len(row.Metadata) > 0 {
			if err := json.Unmarshal(row.Metadata, &s.Metadata); err != nil {
				return nil, fmt.Errorf("failed to decode session metadata: %w", err)
			}
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
