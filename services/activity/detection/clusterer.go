package detection

import (
	"time"

	"github.com/gavraq/lifetrack/internal/pkg/models"
)

// Clusterer groups chronologically ordered segments into session clusters,
// tolerating pauses up to its gap tolerance
type Clusterer struct {
	gapTolerance time.Duration
}

// NewClusterer creates a Clusterer with the given gap tolerance
func NewClusterer(gapTolerance time.Duration) *Clusterer {
	return &Clusterer{gapTolerance: gapTolerance}
}

// Cluster performs a single greedy forward pass: a segment joins the open
// cluster when the pause since the cluster's end is within tolerance,
// otherwise it starts a new one. Every segment lands in exactly one cluster
// and clusters come out in chronological order.
func (c *Clusterer) Cluster(segments []models.VelocitySegment) []models.SessionCluster {
	if len(segments) == 0 {
		return nil
	}

	clusters := []models.SessionCluster{{Segments: []models.VelocitySegment{segments[0]}}}
	for _, seg := range segments[1:] {
		last := &clusters[len(clusters)-1]
		if seg.StartTime.Sub(last.End()) > c.gapTolerance {
			clusters = append(clusters, models.SessionCluster{})
			last = &clusters[len(clusters)-1]
		}
		last.Segments = append(last.Segments, seg)
	}

	return clusters
}
