// Package places holds the registry of named places consulted by the
// activity detectors. The registry is loaded once at startup and is
// immutable afterwards, so it is safe to share across concurrent
// detection runs without locking.
package places

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/models"
	"github.com/gavraq/lifetrack/internal/utils"
)

// Large places fall back to a linear scan because a single geohash cell
// plus neighbors no longer covers their radius.
const cellIndexMaxRadiusM = 2000.0

// maxIndexableRadius caps the flat cutoff by the cell geometry at the
// place's latitude: cell width shrinks with cos(latitude), so near the
// poles even a sub-2km radius can spill past the neighbor ring.
func maxIndexableRadius(latitude float64) float64 {
	return math.Min(cellIndexMaxRadiusM, utils.MaxIndexableRadiusM(latitude))
}

// Registry holds named places and answers point-in-place queries.
// Membership ties between overlapping places are resolved by load order:
// the first matching place in the source document wins.
type Registry struct {
	ordered []models.Place
	byCell  map[string][]int // cell -> indexes into ordered, ascending
	large   []int            // indexes of places too big for the cell index
	skipped int
}

// Load reads a place definitions document from a file path
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open places file: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader builds a registry from a JSON array of place definitions.
// Malformed entries (bad coordinates, non-positive radius, empty name) are
// skipped and counted individually rather than aborting the whole load; a
// document yielding zero places is a valid, if degenerate, registry.
func LoadFromReader(r io.Reader) (*Registry, error) {
	var configs []models.PlaceConfig
	if err := json.NewDecoder(r).Decode(&configs); err != nil {
		return nil, fmt.Errorf("failed to decode places document: %w", err)
	}

	reg := &Registry{
		byCell: make(map[string][]int),
	}

	for i, pc := range configs {
		place, err := validatePlace(pc)
		if err != nil {
			logger.Warn("Skipping malformed place entry",
				logger.Int("index", i),
				logger.String("name", pc.Name),
				logger.Err(err))
			reg.skipped++
			continue
		}
		reg.add(place)
	}

	logger.Info("Place registry loaded",
		logger.Int("places", len(reg.ordered)),
		logger.Int("skipped", reg.skipped))

	return reg, nil
}

func validatePlace(pc models.PlaceConfig) (models.Place, error) {
	if pc.Name == "" {
		return models.Place{}, fmt.Errorf("place name is required")
	}
	if !utils.ValidCoordinates(pc.Coordinates.Latitude, pc.Coordinates.Longitude) {
		return models.Place{}, fmt.Errorf("coordinates out of range: lat=%v lng=%v",
			pc.Coordinates.Latitude, pc.Coordinates.Longitude)
	}
	if pc.RadiusM <= 0 {
		return models.Place{}, fmt.Errorf("radius must be positive, got %v", pc.RadiusM)
	}

	return models.Place{
		Name:       pc.Name,
		Latitude:   pc.Coordinates.Latitude,
		Longitude:  pc.Coordinates.Longitude,
		RadiusM:    pc.RadiusM,
		Activities: pc.Activities,
	}, nil
}

func (r *Registry) add(place models.Place) {
	idx := len(r.ordered)
	r.ordered = append(r.ordered, place)

	if place.RadiusM > maxIndexableRadius(place.Latitude) {
		r.large = append(r.large, idx)
		return
	}

	// Register under the centroid cell and its neighbors so any point
	// within the radius hits the index through its own cell.
	for _, cell := range utils.CellWithNeighbors(place.Latitude, place.Longitude) {
		r.byCell[cell] = append(r.byCell[cell], idx)
	}
}

// All returns every place in load order
func (r *Registry) All() []models.Place {
	out := make([]models.Place, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of loaded places
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Skipped returns how many malformed entries were dropped during load
func (r *Registry) Skipped() int {
	return r.skipped
}

// ByTag returns all places tagged for the given activity, in load order
func (r *Registry) ByTag(tag string) []models.Place {
	var out []models.Place
	for _, p := range r.ordered {
		if p.HasActivity(tag) {
			out = append(out, p)
		}
	}
	return out
}

// FindContaining returns the first place (in load order) whose radius
// contains the point, or nil if the point is outside every place
func (r *Registry) FindContaining(latitude, longitude float64) *models.Place {
	for _, idx := range r.candidates(latitude, longitude) {
		if r.contains(idx, latitude, longitude) {
			p := r.ordered[idx]
			return &p
		}
	}
	return nil
}

// FindContainingTagged returns every place tagged for the activity whose
// radius contains the point, in load order. Callers treat the first entry
// as the match and any further entries as ambiguity.
func (r *Registry) FindContainingTagged(latitude, longitude float64, tag string) []models.Place {
	var out []models.Place
	for _, idx := range r.candidates(latitude, longitude) {
		if r.ordered[idx].HasActivity(tag) && r.contains(idx, latitude, longitude) {
			out = append(out, r.ordered[idx])
		}
	}
	return out
}

// candidates narrows the membership scan via the geohash cell index before
// any exact distance work, merging in large places that bypass the index.
// The result preserves load order.
func (r *Registry) candidates(latitude, longitude float64) []int {
	if !utils.ValidCoordinates(latitude, longitude) {
		return nil
	}

	cell := utils.EncodeCell(latitude, longitude)
	indexed := r.byCell[cell]

	if len(r.large) == 0 {
		return indexed
	}

	merged := make([]int, 0, len(indexed)+len(r.large))
	merged = append(merged, indexed...)
	merged = append(merged, r.large...)
	sort.Ints(merged)
	return merged
}

func (r *Registry) contains(idx int, latitude, longitude float64) bool {
	p := r.ordered[idx]
	d := utils.DistanceMeters(
		utils.GeoPoint{Latitude: latitude, Longitude: longitude},
		utils.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude},
	)
	return d <= p.RadiusM
}
