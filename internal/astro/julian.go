package astro

import (
	"math"
	"time"
)

// J2000 is the reference epoch for all polynomial expansions in this package.
const J2000 = 2451545.0

const secondsPerDay = 86400.0

// unixEpochJD is the Julian Day of 1970-01-01T00:00:00Z.
const unixEpochJD = 2440587.5

// JulianDay converts a UTC instant to a fractional Julian Day.
func JulianDay(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + sec/secondsPerDay
}

// JulianDayTime converts a Julian Day back to a UTC instant, rounded to the
// nearest second so JulianDay/JulianDayTime round-trip at second granularity.
func JulianDayTime(jd float64) time.Time {
	sec := (jd - unixEpochJD) * secondsPerDay
	return time.Unix(int64(math.Round(sec)), 0).UTC()
}

// CenturiesSinceJ2000 returns Julian centuries elapsed since J2000.0.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / 36525.0
}
