package models

import "time"

// VelocityClass is a coarse motion class derived from ping-to-ping speed
type VelocityClass int

const (
	ClassStationary VelocityClass = iota
	ClassWalking
	ClassDriving
)

// String returns the lowercase name of the velocity class
func (c VelocityClass) String() string {
	switch c {
	case ClassStationary:
		return "stationary"
	case ClassWalking:
		return "walking"
	case ClassDriving:
		return "driving"
	}
	return "unknown"
}

// VelocitySegment represents a run of motion between pings that share one
// velocity class with no internal data gap
type VelocitySegment struct {
	StartLatitude  float64       `json:"start_latitude"`
	StartLongitude float64       `json:"start_longitude"`
	EndLatitude    float64       `json:"end_latitude"`
	EndLongitude   float64       `json:"end_longitude"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	VelocityMps    float64       `json:"velocity_mps"`
	Class          VelocityClass `json:"class"`
	PairCount      int           `json:"pair_count"`
}

// Duration returns the time span covered by the segment
func (s VelocitySegment) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// SessionCluster is a gap-tolerant grouping of consecutive segments believed
// to belong to one continuous activity
type SessionCluster struct {
	Segments []VelocitySegment `json:"segments"`
}

// Start returns the start time of the first segment in the cluster
func (c SessionCluster) Start() time.Time {
	if len(c.Segments) == 0 {
		return time.Time{}
	}
	return c.Segments[0].StartTime
}

// End returns the end time of the last segment in the cluster
func (c SessionCluster) End() time.Time {
	if len(c.Segments) == 0 {
		return time.Time{}
	}
	return c.Segments[len(c.Segments)-1].EndTime
}

// Duration returns the wall-clock span of the cluster, gaps included
func (c SessionCluster) Duration() time.Duration {
	return c.End().Sub(c.Start())
}

// Confidence grades how likely a detected session is a real activity
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Metadata keys attached to every detected session
const (
	MetaLocationName    = "location_name"
	MetaSegmentCount    = "segment_count"
	MetaDurationMinutes = "duration_minutes"
)

// ActivitySession represents a finalized, scored activity occurrence
type ActivitySession struct {
	ID            string            `json:"id" db:"id"`
	UserID        string            `json:"user_id" db:"user_id"`
	DeviceID      string            `json:"device_id" db:"device_id"`
	ActivityType  string            `json:"activity_type" db:"activity_type"`
	StartTime     time.Time         `json:"start_time" db:"start_time"`
	EndTime       time.Time         `json:"end_time" db:"end_time"`
	DurationHours float64           `json:"duration_hours" db:"duration_hours"`
	Confidence    Confidence        `json:"confidence" db:"confidence"`
	Metadata      map[string]string `json:"metadata"`
}

// DetectionResult is the outcome of running the detection pipeline over one
// subject/device/date batch of pings
type DetectionResult struct {
	UserID       string            `json:"user_id"`
	DeviceID     string            `json:"device_id"`
	Date         string            `json:"date"`
	Sessions     []ActivitySession `json:"sessions"`
	SkippedPings int               `json:"skipped_pings"`
	SourceError  string            `json:"source_error,omitempty"`
}
