package detection

import (
	"fmt"
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/pkg/places"
)

// Rule holds the per-activity parameters of the detection pipeline. A
// detector is the generic pipeline bound to one rule; the rule carries
// everything that differs between activities.
type Rule struct {
	// ActivityType names the detected activity on sessions and events
	ActivityType string
	// PlaceTag selects the places where this activity can happen
	PlaceTag string
	// Classes lists the velocity classes kept for clustering; empty keeps all
	Classes []models.VelocityClass
	// GapTolerance is the longest pause allowed inside one session
	GapTolerance time.Duration
	// MinDuration discards clusters shorter than a plausible session
	MinDuration time.Duration
	// ExpectedMin and ExpectedMax bound the typical session duration used
	// for confidence scoring
	ExpectedMin time.Duration
	ExpectedMax time.Duration
	// EarliestStartHour and LatestStartHour bound the session start hour of
	// day; both -1 disables the window
	EarliestStartHour int
	LatestStartHour   int
}

// minSegmentsForConfidence is the segment count under which a cluster is too
// thin to score above low
const minSegmentsForConfidence = 3

// Detector runs the segment → filter → cluster → score pipeline for one
// activity rule over a shared place registry
type Detector struct {
	rule      Rule
	segmenter *Segmenter
	clusterer *Clusterer
	registry  *places.Registry
}

// NewDetector creates a detector for the given rule
func NewDetector(rule Rule, segCfg SegmenterConfig, registry *places.Registry) *Detector {
	return &Detector{
		rule:      rule,
		segmenter: NewSegmenter(segCfg),
		clusterer: NewClusterer(rule.GapTolerance),
		registry:  registry,
	}
}

// ActivityType returns the activity this detector produces
func (d *Detector) ActivityType() string {
	return d.rule.ActivityType
}

// Detect runs the full pipeline over one day of pings for one subject and
// returns the finalized sessions in chronological order plus the count of
// malformed pings that were dropped. No tagged places configured means no
// sessions, not an error.
func (d *Detector) Detect(userID, deviceID string, pings []models.Ping) ([]models.ActivitySession, int) {
	segments, skipped := d.segmenter.Segment(pings)

	if len(d.registry.ByTag(d.rule.PlaceTag)) == 0 {
		return nil, skipped
	}

	kept := make([]models.VelocitySegment, 0, len(segments))
	placeNames := make(map[int][]string, len(segments))
	for _, seg := range segments {
		if !d.classAllowed(seg.Class) {
			continue
		}
		matches := d.registry.FindContainingTagged(seg.StartLatitude, seg.StartLongitude, d.rule.PlaceTag)
		if len(matches) == 0 {
			continue
		}
		names := make([]string, 0, len(matches))
		for _, p := range matches {
			names = append(names, p.Name)
		}
		placeNames[len(kept)] = names
		kept = append(kept, seg)
	}

	var sessions []models.ActivitySession
	segIdx := 0
	for _, cluster := range d.clusterer.Cluster(kept) {
		names := placeNames[segIdx]
		ambiguous := len(names) > 1
		for i := 1; i < len(cluster.Segments); i++ {
			other := placeNames[segIdx+i]
			if len(other) > 1 || (len(other) > 0 && len(names) > 0 && other[0] != names[0]) {
				ambiguous = true
			}
		}
		segIdx += len(cluster.Segments)

		duration := cluster.Duration()
		if duration < d.rule.MinDuration {
			continue
		}
		if !d.startHourAllowed(cluster.Start()) {
			continue
		}

		session := models.ActivitySession{
			UserID:        userID,
			DeviceID:      deviceID,
			ActivityType:  d.rule.ActivityType,
			StartTime:     cluster.Start(),
			EndTime:       cluster.End(),
			DurationHours: duration.Hours(),
			Confidence:    d.score(duration, len(cluster.Segments), ambiguous),
			Metadata: map[string]string{
				models.MetaLocationName:    names[0],
				models.MetaSegmentCount:    fmt.Sprintf("%d", len(cluster.Segments)),
				models.MetaDurationMinutes: fmt.Sprintf("%.1f", duration.Minutes()),
			},
		}
		sessions = append(sessions, session)
	}

	return sessions, skipped
}

func (d *Detector) classAllowed(class models.VelocityClass) bool {
	if len(d.rule.Classes) == 0 {
		return true
	}
	for _, c := range d.rule.Classes {
		if c == class {
			return true
		}
	}
	return false
}

func (d *Detector) startHourAllowed(start time.Time) bool {
	if d.rule.EarliestStartHour < 0 || d.rule.LatestStartHour < 0 {
		return true
	}
	hour := start.Hour()
	return hour >= d.rule.EarliestStartHour && hour <= d.rule.LatestStartHour
}

// score grades a surviving cluster. Thin clusters and clusters barely over
// the minimum duration stay low; clusters inside the expected duration band
// at an unambiguous place are high; everything else is medium.
func (d *Detector) score(duration time.Duration, segmentCount int, ambiguous bool) models.Confidence {
	nearMin := d.rule.MinDuration + d.rule.MinDuration/5
	if segmentCount < minSegmentsForConfidence || duration < nearMin {
		return models.ConfidenceLow
	}
	if duration >= d.rule.ExpectedMin && duration <= d.rule.ExpectedMax && !ambiguous {
		return models.ConfidenceHigh
	}
	return models.ConfidenceMedium
}
