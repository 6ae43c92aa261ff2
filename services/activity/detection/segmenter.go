package detection

import (
	"sort"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/utils"
)

// SegmenterConfig holds the velocity thresholds and the maximum gap two
// consecutive pings may have while still belonging to one segment
type SegmenterConfig struct {
	StationaryMaxMps float64
	WalkingMaxMps    float64
	SegmentGap       time.Duration
}

// NewSegmenterConfig builds a SegmenterConfig from the detection section of
// the application config
func NewSegmenterConfig(cfg models.DetectionConfig) SegmenterConfig {
	return SegmenterConfig{
		StationaryMaxMps: cfg.StationaryMaxMps,
		WalkingMaxMps:    cfg.WalkingMaxMps,
		SegmentGap:       time.Duration(cfg.SegmentGapMinutes) * time.Minute,
	}
}

// Segmenter turns a day of raw GPS pings into velocity-classified segments
type Segmenter struct {
	cfg SegmenterConfig
}

// NewSegmenter creates a new Segmenter
func NewSegmenter(cfg SegmenterConfig) *Segmenter {
	return &Segmenter{cfg: cfg}
}

// Classify maps a speed in m/s onto a velocity class
func (s *Segmenter) Classify(velocityMps float64) models.VelocityClass {
	switch {
	case velocityMps < s.cfg.StationaryMaxMps:
		return models.ClassStationary
	case velocityMps < s.cfg.WalkingMaxMps:
		return models.ClassWalking
	default:
		return models.ClassDriving
	}
}

// Segment converts pings into ordered velocity segments. Malformed pings are
// dropped and counted in the second return value. Consecutive ping pairs with
// the same class merge into one segment; a pair whose time gap exceeds the
// segment gap closes the open segment and is not materialized, so segments
// never span a data gap. Fewer than two usable pings yield no segments.
func (s *Segmenter) Segment(pings []models.Ping) ([]models.VelocitySegment, int) {
	valid := make([]models.Ping, 0, len(pings))
	for _, p := range pings {
		if p.IsValid() {
			valid = append(valid, p)
		}
	}
	skipped := len(pings) - len(valid)

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Timestamp.Before(valid[j].Timestamp)
	})

	if len(valid) < 2 {
		return nil, skipped
	}

	var (
		segments []models.VelocitySegment
		current  *models.VelocitySegment
		// per-segment accumulators for the mean velocity
		distanceM float64
		elapsedS  float64
	)

	closeCurrent := func() {
		if current == nil {
			return
		}
		if elapsedS > 0 {
			current.VelocityMps = distanceM / elapsedS
		}
		segments = append(segments, *current)
		current = nil
		distanceM = 0
		elapsedS = 0
	}

	for i := 1; i < len(valid); i++ {
		prev, cur := valid[i-1], valid[i]

		gap := cur.Timestamp.Sub(prev.Timestamp)
		if gap > s.cfg.SegmentGap {
			closeCurrent()
			continue
		}

		// duplicate timestamps count as one second of elapsed time so a
		// co-located burst reads as stationary instead of dividing by zero
		elapsed := gap
		if elapsed < time.Second {
			elapsed = time.Second
		}

		dist := utils.DistanceMeters(
			utils.GeoPoint{Latitude: prev.Latitude, Longitude: prev.Longitude},
			utils.GeoPoint{Latitude: cur.Latitude, Longitude: cur.Longitude},
		)
		class := s.Classify(dist / elapsed.Seconds())

		if current != nil && current.Class != class {
			closeCurrent()
		}

		if current == nil {
			current = &models.VelocitySegment{
				StartLatitude:  prev.Latitude,
				StartLongitude: prev.Longitude,
				StartTime:      prev.Timestamp,
				Class:          class,
			}
		}

		current.EndLatitude = cur.Latitude
		current.EndLongitude = cur.Longitude
		current.EndTime = cur.Timestamp
		current.PairCount++
		distanceM += dist
		elapsedS += elapsed.Seconds()
	}
	closeCurrent()

	return segments, skipped
}
