// Package astro provides the spherical-astronomy primitives the house solver,
// dasha builder and panchangam solver are built on. Everything here is a pure
// function of time and location; angles are degrees unless a name says radians.
package astro

import "math"

const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

// Normalize maps any angle into [0, 360). Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(deg float64) float64 {
	x := math.Mod(deg, 360.0)
	if x < 0 {
		x += 360.0
	}
	return x
}

// WrapPi maps a radian angle into [-π, π). Used for hour-angle residuals where
// the sign of the difference matters.
func WrapPi(rad float64) float64 {
	x := math.Mod(rad+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x - math.Pi
}

// DMS is a degrees/minutes/seconds rendering of an absolute longitude.
type DMS struct {
	Deg int `json:"deg"`
	Min int `json:"min"`
	Sec int `json:"sec"`
}

// ToDMS converts an absolute degree value into whole degrees, minutes and
// rounded seconds, carrying overflow so 29°59'60" becomes 30°0'0".
func ToDMS(deg float64) DMS {
	a := Normalize(deg)
	d := int(a)
	mf := (a - float64(d)) * 60.0
	m := int(mf)
	s := int(math.Round((mf - float64(m)) * 60.0))
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	return DMS{Deg: d % 360, Min: m, Sec: s}
}
