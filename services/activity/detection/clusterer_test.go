package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

func segmentAt(start time.Time, d time.Duration, class models.VelocityClass) models.VelocitySegment {
	return models.VelocitySegment{
		StartTime: start,
		EndTime:   start.Add(d),
		Class:     class,
		PairCount: 1,
	}
}

func TestCluster_Empty(t *testing.T) {
	c := NewClusterer(10 * time.Minute)
	assert.Nil(t, c.Cluster(nil))
}

func TestCluster_PausesWithinToleranceMerge(t *testing.T) {
	c := NewClusterer(10 * time.Minute)
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	segments := []models.VelocitySegment{
		segmentAt(start, 5*time.Minute, models.ClassWalking),
		segmentAt(start.Add(13*time.Minute), 5*time.Minute, models.ClassStationary), // 8 min pause
		segmentAt(start.Add(25*time.Minute), 5*time.Minute, models.ClassWalking),    // 7 min pause
	}

	clusters := c.Cluster(segments)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Segments, 3)
	assert.Equal(t, start, clusters[0].Start())
	assert.Equal(t, start.Add(30*time.Minute), clusters[0].End())
}

func TestCluster_GapBeyondToleranceSplits(t *testing.T) {
	c := NewClusterer(10 * time.Minute)
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	segments := []models.VelocitySegment{
		segmentAt(start, 5*time.Minute, models.ClassWalking),
		segmentAt(start.Add(20*time.Minute), 5*time.Minute, models.ClassWalking), // 15 min gap
		segmentAt(start.Add(50*time.Minute), 5*time.Minute, models.ClassWalking), // 25 min gap
	}

	clusters := c.Cluster(segments)
	require.Len(t, clusters, 3)

	// every segment lands in exactly one cluster, in order
	total := 0
	var prevEnd time.Time
	for _, cl := range clusters {
		total += len(cl.Segments)
		assert.True(t, cl.Start().After(prevEnd) || prevEnd.IsZero())
		prevEnd = cl.End()
	}
	assert.Equal(t, len(segments), total)
}

func TestCluster_NeverJoinsSegmentsAcrossGap(t *testing.T) {
	tolerance := 10 * time.Minute
	c := NewClusterer(tolerance)
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	var segments []models.VelocitySegment
	cursor := start
	gaps := []time.Duration{3 * time.Minute, 45 * time.Minute, 9 * time.Minute, 11 * time.Minute, 2 * time.Minute}
	for _, g := range gaps {
		segments = append(segments, segmentAt(cursor, 4*time.Minute, models.ClassWalking))
		cursor = cursor.Add(4*time.Minute + g)
	}
	segments = append(segments, segmentAt(cursor, 4*time.Minute, models.ClassWalking))

	for _, cl := range c.Cluster(segments) {
		for i := 1; i < len(cl.Segments); i++ {
			pause := cl.Segments[i].StartTime.Sub(cl.Segments[i-1].EndTime)
			assert.LessOrEqual(t, pause, tolerance)
		}
	}
}

func TestCluster_ZeroDurationCluster(t *testing.T) {
	c := NewClusterer(10 * time.Minute)
	instant := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	clusters := c.Cluster([]models.VelocitySegment{segmentAt(instant, 0, models.ClassStationary)})
	require.Len(t, clusters, 1)
	assert.Equal(t, time.Duration(0), clusters[0].Duration())
}
