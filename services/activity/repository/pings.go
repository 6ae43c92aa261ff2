package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gavraq/lifetrack/internal/pkg/constants"
	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/models"
)

// pingHistoryTTL bounds how long raw ping history is retained
const pingHistoryTTL = 30 * 24 * time.Hour

// PingRepo stores raw GPS pings in Redis sorted sets, one set per
// user/device/day keyed by the ping's unix timestamp
type PingRepo struct {
	redis *database.RedisClient
}

// NewPingRepo creates a new ping repository
func NewPingRepo(redisClient *database.RedisClient) *PingRepo {
	return &PingRepo{redis: redisClient}
}

func pingKey(userID, deviceID string, date time.Time) string {
	return fmt.Sprintf(constants.KeyPingHistory, userID, deviceID, models.DateOf(date))
}

// StorePings appends pings to the day's sorted set. Members are JSON-encoded
// pings scored by unix timestamp, so duplicate fixes collapse naturally.
func (r *PingRepo) StorePings(ctx context.Context, userID string, deviceID string, date time.Time, pings []models.Ping) error {
	if len(pings) == 0 {
		return nil
	}

	key := pingKey(userID, deviceID, date)
	members := make([]*redis.Z, 0, len(pings))
	for _, p := range pings {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal ping: %w", err)
		}
		members = append(members, &redis.Z{
			Score:  float64(p.Timestamp.Unix()),
			Member: string(data),
		})
	}

	if err := r.redis.ZAdd(ctx, key, members...); err != nil {
		return fmt.Errorf("failed to store pings: %w", err)
	}
	if err := r.redis.Expire(ctx, key, pingHistoryTTL); err != nil {
		return fmt.Errorf("failed to set ping history TTL: %w", err)
	}

	logger.Debug("stored pings",
		logger.String("user_id", userID),
		logger.String("device_id", deviceID),
		logger.Int("count", len(pings)))
	return nil
}

// GetPingsForDate returns the day's pings in timestamp order. Members that
// fail to decode are skipped and logged rather than failing the read.
func (r *PingRepo) GetPingsForDate(ctx context.Context, userID string, deviceID string, date time.Time) ([]models.Ping, error) {
	start, end, err := models.DayBounds(models.DateOf(date))
	if err != nil {
		return nil, err
	}

	key := pingKey(userID, deviceID, date)
	members, err := r.redis.ZRangeByScore(ctx, key,
		fmt.Sprintf("%d", start.Unix()),
		fmt.Sprintf("(%d", end.Unix()))
	if err != nil {
		return nil, fmt.Errorf("failed to read pings: %w", err)
	}

	pings := make([]models.Ping, 0, len(members))
	for _, m := range members {
		var p models.Ping
		if err := json.Unmarshal([]byte(m), &p); err != nil {
			logger.Warn("skipping undecodable ping member",
				logger.String("key", key),
				logger.Err(err))
			continue
		}
		pings = append(pings, p)
	}

	return pings, nil
}
