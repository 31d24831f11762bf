// Package ephemeris defines the narrow capabilities the computation core
// consumes: planetary positions at an instant and the sunrise window for a
// local day. Implementations may hold expensive process-wide state; the core
// never does.
package ephemeris

import (
	"context"
	"strings"
	"time"

	apperrors "jyotish/pkg/domain-errors"
)

// Bodies is the fixed roster every Provider must return, in this order.
var Bodies = [10]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// Position is one body's tropical, geocentric apparent position.
type Position struct {
	Name     string  `json:"name"`
	Lon      float64 `json:"lon"`       // ecliptic longitude, degrees [0,360)
	Lat      float64 `json:"lat"`       // ecliptic latitude, degrees
	DistAU   float64 `json:"dist_au"`   // distance, astronomical units
	SpeedLon float64 `json:"speed_lon"` // longitude speed, degrees/day
}

// Result is a full roster lookup.
type Result struct {
	JDUT      float64
	UTC       time.Time
	Positions []Position
}

// Provider resolves the roster's positions for a UTC instant and observer.
type Provider interface {
	Positions(ctx context.Context, utc time.Time, latDeg, lonEastDeg float64) (Result, error)
}

// SunriseFinder resolves the sunrise that opens a local calendar day and the
// next one, scanning a two-day window from local midnight.
type SunriseFinder interface {
	SunriseWindow(ctx context.Context, latDeg, lonEastDeg float64, localMidnight time.Time) (sunrise, nextSunrise time.Time, err error)
}

// FindBody locates a body by name (case-insensitive). A missing body is a
// provider inconsistency, not a recoverable condition.
func FindBody(positions []Position, name string) (Position, error) {
	for _, p := range positions {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Position{}, apperrors.New(apperrors.CodeInternal, "body not found in position list: "+name)
}
