package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/models"
)

func newTestPingRepo(t *testing.T) (*PingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPingRepo(database.NewRedisClientFromClient(client)), mr
}

func TestPingRepo_StoreAndGetRoundTrip(t *testing.T) {
	repo, _ := newTestPingRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	pings := []models.Ping{
		{Latitude: 37.0143, Longitude: -8.0088, Timestamp: day.Add(11 * time.Hour)},
		{Latitude: 37.0150, Longitude: -8.0090, Timestamp: day.Add(11*time.Hour + time.Minute)},
		{Latitude: 37.0160, Longitude: -8.0095, Timestamp: day.Add(11*time.Hour + 2*time.Minute)},
	}

	require.NoError(t, repo.StorePings(ctx, "user-1", "phone-1", day, pings))

	got, err := repo.GetPingsForDate(ctx, "user-1", "phone-1", day)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, pings[0].Latitude, got[0].Latitude)
	assert.True(t, got[0].Timestamp.Before(got[1].Timestamp))
	assert.True(t, got[1].Timestamp.Before(got[2].Timestamp))
}

func TestPingRepo_StoreEmptyBatchIsNoop(t *testing.T) {
	repo, mr := newTestPingRepo(t)

	require.NoError(t, repo.StorePings(context.Background(), "user-1", "phone-1", time.Now(), nil))
	assert.Empty(t, mr.Keys())
}

func TestPingRepo_StoreSetsRetentionTTL(t *testing.T) {
	repo, mr := newTestPingRepo(t)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	pings := []models.Ping{{Latitude: 37.0, Longitude: -8.0, Timestamp: day.Add(time.Hour)}}
	require.NoError(t, repo.StorePings(context.Background(), "user-1", "phone-1", day, pings))

	key := pingKey("user-1", "phone-1", day)
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestPingRepo_GetScopedToDay(t *testing.T) {
	repo, _ := newTestPingRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	require.NoError(t, repo.StorePings(ctx, "user-1", "phone-1", day, []models.Ping{
		{Latitude: 37.0, Longitude: -8.0, Timestamp: day.Add(10 * time.Hour)},
	}))
	require.NoError(t, repo.StorePings(ctx, "user-1", "phone-1", nextDay, []models.Ping{
		{Latitude: 37.0, Longitude: -8.0, Timestamp: nextDay.Add(10 * time.Hour)},
	}))

	got, err := repo.GetPingsForDate(ctx, "user-1", "phone-1", day)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, day.Add(10*time.Hour).Unix(), got[0].Timestamp.Unix())
}

func TestPingRepo_GetSkipsUndecodableMembers(t *testing.T) {
	repo, mr := newTestPingRepo(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePings(ctx, "user-1", "phone-1", day, []models.Ping{
		{Latitude: 37.0, Longitude: -8.0, Timestamp: day.Add(10 * time.Hour)},
	}))
	mr.ZAdd(pingKey("user-1", "phone-1", day), float64(day.Add(11*time.Hour).Unix()), "not-json")

	got, err := repo.GetPingsForDate(ctx, "user-1", "phone-1", day)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPingRepo_GetMissingKeyReturnsEmpty(t *testing.T) {
	repo, _ := newTestPingRepo(t)

	got, err := repo.GetPingsForDate(context.Background(), "nobody", "phone-1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, got)
}
