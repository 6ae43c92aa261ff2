package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// CellPrecision is the geohash precision used for the coarse spatial index.
// Precision 5 cells are roughly 4.9 km tall everywhere, but their width
// shrinks with the cosine of latitude.
const CellPrecision = 5

// Precision-5 cell edges in degrees: 12 bits of latitude, 13 of longitude.
const (
	cellHeightDeg = 180.0 / 4096.0
	cellWidthDeg  = 360.0 / 8192.0
)

// EncodeCell converts a point to its coarse geohash cell
func EncodeCell(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, CellPrecision)
}

// CellWithNeighbors returns a point's cell plus its eight neighbors
func CellWithNeighbors(latitude, longitude float64) []string {
	cell := EncodeCell(latitude, longitude)
	return append([]string{cell}, geohash.Neighbors(cell)...)
}

// MaxIndexableRadiusM returns the largest circle radius the cell-plus-
// neighbors index can serve at the given latitude. A point within the
// radius is guaranteed to land in the centroid's 3x3 cell ring only while
// the radius stays under the smallest cell dimension the circle can touch,
// so the width bound is taken at the most poleward latitude reachable from
// the centroid. Returns 0 near the poles, where the ring gives no coverage
// guarantee at all.
func MaxIndexableRadiusM(latitude float64) float64 {
	heightM := cellHeightDeg * math.Pi / 180.0 * EarthRadiusM

	// The circle extends at most one cell height poleward (its radius is
	// capped by heightM below) and the ring adds one more row of cells.
	edgeLat := math.Abs(latitude) + 2*cellHeightDeg
	if edgeLat >= 90.0 {
		return 0
	}

	widthM := cellWidthDeg * math.Pi / 180.0 * EarthRadiusM * math.Cos(edgeLat*math.Pi/180.0)
	return math.Min(heightM, widthM)
}
