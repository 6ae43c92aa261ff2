package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Identity(t *testing.T) {
	p := GeoPoint{Latitude: 51.3721, Longitude: -0.3568}
	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	p1 := GeoPoint{Latitude: 51.3721, Longitude: -0.3568}
	p2 := GeoPoint{Latitude: 37.0143, Longitude: -8.0088}

	d1 := DistanceMeters(p1, p2)
	d2 := DistanceMeters(p2, p1)

	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   GeoPoint
		expected float64 // meters
		tol      float64 // fraction
	}{
		{
			name:     "one degree of latitude",
			p1:       GeoPoint{Latitude: 51.0, Longitude: 0.0},
			p2:       GeoPoint{Latitude: 52.0, Longitude: 0.0},
			expected: 111195,
			tol:      0.01,
		},
		{
			name:     "short hop across a golf course",
			p1:       GeoPoint{Latitude: 37.0143, Longitude: -8.0088},
			p2:       GeoPoint{Latitude: 37.0152, Longitude: -8.0088},
			expected: 100,
			tol:      0.01,
		},
		{
			name:     "London to Paris order of magnitude",
			p1:       GeoPoint{Latitude: 51.5074, Longitude: -0.1278},
			p2:       GeoPoint{Latitude: 48.8566, Longitude: 2.3522},
			expected: 343500,
			tol:      0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceMeters(tt.p1, tt.p2)
			assert.InDelta(t, tt.expected, d, tt.expected*tt.tol)
		})
	}
}

func TestBearingDegrees(t *testing.T) {
	origin := GeoPoint{Latitude: 51.0, Longitude: 0.0}

	north := BearingDegrees(origin, GeoPoint{Latitude: 52.0, Longitude: 0.0})
	assert.InDelta(t, 0.0, north, 0.5)

	east := BearingDegrees(origin, GeoPoint{Latitude: 51.0, Longitude: 1.0})
	assert.InDelta(t, 90.0, east, 1.0)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(51.37, -0.35))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.NaN()))
}

func TestEncodeCell_StableAndShared(t *testing.T) {
	// Two points ~100m apart share a precision-5 cell or are neighbors
	cells := CellWithNeighbors(37.0143, -8.0088)
	other := EncodeCell(37.0152, -8.0088)

	assert.Len(t, cells, 9)
	assert.Contains(t, cells, other)
}

func TestMaxIndexableRadiusM(t *testing.T) {
	// Near the equator the bound is the full ~4.9km cell dimension
	assert.InDelta(t, 4886, MaxIndexableRadiusM(0.0), 50)

	// Cell width shrinks with latitude; past ~66 degrees it undercuts
	// a 2km radius
	assert.Greater(t, MaxIndexableRadiusM(60.0), 2000.0)
	assert.Less(t, MaxIndexableRadiusM(66.3), 2000.0)
	assert.Less(t, MaxIndexableRadiusM(80.0), 900.0)

	// Symmetric across the equator, zero at the poles
	assert.Equal(t, MaxIndexableRadiusM(45.0), MaxIndexableRadiusM(-45.0))
	assert.Equal(t, 0.0, MaxIndexableRadiusM(89.99))
}
