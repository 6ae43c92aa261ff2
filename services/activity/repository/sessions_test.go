package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/models"
)

func newTestSessionRepo(t *testing.T) (*SessionRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return NewSessionRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func testSession(start time.Time) *models.ActivitySession {
	return &models.ActivitySession{
		ID:            "11111111-2222-3333-4444-555555555555",
		UserID:        "user-1",
		DeviceID:      "phone-1",
		ActivityType:  "golf",
		StartTime:     start,
		EndTime:       start.Add(145 * time.Minute),
		DurationHours: 2.42,
		Confidence:    models.ConfidenceHigh,
		Metadata:      map[string]string{models.MetaLocationName: "Pine Cliffs Golf"},
	}
}

func TestSessionRepo_UpsertSessions(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	start := time.Date(2026, 3, 14, 10, 40, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO activity_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO activity_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sessions := []*models.ActivitySession{
		testSession(start),
		testSession(start.Add(4 * time.Hour)),
	}
	require.NoError(t, repo.UpsertSessions(context.Background(), sessions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_UpsertEmptyIsNoop(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	require.NoError(t, repo.UpsertSessions(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_UpsertRollsBackOnError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	start := time.Date(2026, 3, 14, 10, 40, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO activity_sessions").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.UpsertSessions(context.Background(), []*models.ActivitySession{testSession(start)})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetSessionsByDate(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	start := time.Date(2026, 3, 14, 10, 40, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "device_id", "activity_type", "start_time",
		"end_time", "duration_hours", "confidence", "metadata",
	}).AddRow(
		"11111111-2222-3333-4444-555555555555", "user-1", "phone-1", "golf",
		start, start.Add(145*time.Minute), 2.42, "high",
		[]byte(`{"location_name":"Pine Cliffs Golf"}`),
	)

	mock.ExpectQuery("FROM activity_sessions").
		WithArgs("user-1", start.Truncate(24*time.Hour), start.Truncate(24*time.Hour).Add(24*time.Hour)).
		WillReturnRows(rows)

	sessions, err := repo.GetSessionsByDate(context.Background(), "user-1", start)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "golf", sessions[0].ActivityType)
	assert.Equal(t, models.ConfidenceHigh, sessions[0].Confidence)
	assert.Equal(t, "Pine Cliffs Golf", sessions[0].Metadata[models.MetaLocationName])
	assert.NoError(t, mock.ExpectationsWereMet())
}
