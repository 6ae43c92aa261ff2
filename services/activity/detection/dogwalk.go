package detection

import (
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/pkg/places"
)

// ActivityDogWalk is the activity type and place tag for dog walks
const ActivityDogWalk = "dog-walk"

// NewDogWalkDetector builds the dog walk detector. Driving segments are
// excluded so commuting past a walking spot never reads as a walk; sniff
// stops keep stationary segments in.
func NewDogWalkDetector(cfg models.DetectionConfig, registry *places.Registry) *Detector {
	rule := Rule{
		ActivityType: ActivityDogWalk,
		PlaceTag:     ActivityDogWalk,
		Classes:      []models.VelocityClass{models.ClassWalking, models.ClassStationary},
		GapTolerance: time.Duration(cfg.DogWalk.GapToleranceMinutes) * time.Minute,
		MinDuration:  time.Duration(cfg.DogWalk.MinDurationMinutes) * time.Minute,
		ExpectedMin:  time.Duration(cfg.DogWalk.ExpectedMinMinutes) * time.Minute,
		ExpectedMax:  time.Duration(cfg.DogWalk.ExpectedMaxMinutes) * time.Minute,
		// dog walks happen at any hour
		EarliestStartHour: -1,
		LatestStartHour:   -1,
	}
	return NewDetector(rule, NewSegmenterConfig(cfg), registry)
}
