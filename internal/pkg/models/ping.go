package models

import (
	"math"
	"time"
)

// Ping represents a single raw GPS fix reported by a tracking device
type Ping struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	AccuracyM float64   `json:"accuracy_m,omitempty" db:"accuracy_m"`
}

// IsValid reports whether the ping carries usable coordinates and a timestamp
func (p Ping) IsValid() bool {
	if p.Timestamp.IsZero() {
		return false
	}
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return false
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return false
	}
	return true
}

// PingBatch represents a batch of pings pushed by an upstream tracker
type PingBatch struct {
	UserID   string    `json:"user_id"`
	DeviceID string    `json:"device_id"`
	Date     string    `json:"date"` // YYYY-MM-DD
	Pings    []Ping    `json:"pings"`
	SentAt   time.Time `json:"sent_at"`
}
