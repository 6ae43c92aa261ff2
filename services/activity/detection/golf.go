package detection

import (
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/pkg/places"
)

// ActivityGolf is the activity type and place tag for golf rounds
const ActivityGolf = "golf"

// NewGolfDetector builds the golf round detector. Golf keeps every velocity
// class because a round mixes walking between shots, standing over the ball
// and cart rides between holes.
func NewGolfDetector(cfg models.DetectionConfig, registry *places.Registry) *Detector {
	rule := Rule{
		ActivityType:      ActivityGolf,
		PlaceTag:          ActivityGolf,
		GapTolerance:      time.Duration(cfg.Golf.GapToleranceMinutes) * time.Minute,
		MinDuration:       time.Duration(cfg.Golf.MinDurationMinutes) * time.Minute,
		ExpectedMin:       time.Duration(cfg.Golf.ExpectedMinMinutes) * time.Minute,
		ExpectedMax:       time.Duration(cfg.Golf.ExpectedMaxMinutes) * time.Minute,
		EarliestStartHour: cfg.Golf.EarliestStartHour,
		LatestStartHour:   cfg.Golf.LatestStartHour,
	}
	return NewDetector(rule, NewSegmenterConfig(cfg), registry)
}
