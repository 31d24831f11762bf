package meeus

import (
	"context"
	"math"
	"time"

	"jyotish/internal/astro"
)

// SunriseWindow finds the first two sunrises from a local midnight, scanning
// a two-day window. If fewer than two events exist (polar day/night), both
// are approximated as 06:00 local, which keeps the panchangam window finite.
func (p *Provider) SunriseWindow(ctx context.Context, latDeg, lonEastDeg float64, localMidnight time.Time) (time.Time, time.Time, error) {
	windowEnd := localMidnight.Add(48 * time.Hour)

	var events []time.Time
	for day := 0; day <= 2 && len(events) < 2; day++ {
		noonUTC := localMidnight.AddDate(0, 0, day).Add(12 * time.Hour).UTC()
		rise, ok := sunriseUTC(astro.JulianDay(noonUTC), latDeg, lonEastDeg)
		if !ok {
			continue
		}
		if !rise.Before(localMidnight) && rise.Before(windowEnd) {
			events = append(events, rise)
		}
	}

	if len(events) < 2 {
		approx0 := localMidnight.Add(6 * time.Hour)
		approx1 := localMidnight.AddDate(0, 0, 1).Add(6 * time.Hour)
		return approx0.UTC(), approx1.UTC(), nil
	}
	return events[0].UTC(), events[1].UTC(), nil
}

// sunriseUTC computes the sunrise nearest the given Julian Day by the NOAA
// solar-transit method. ok is false when the sun never crosses the horizon
// at that latitude and date.
func sunriseUTC(jd, latDeg, lonEastDeg float64) (time.Time, bool) {
	n := math.Round(jd - astro.J2000 + lonEastDeg/360.0)
	jStar := n - lonEastDeg/360.0 // mean solar noon

	m := astro.Normalize(357.5291 + 0.98560028*jStar) // solar mean anomaly
	mr := m * astro.Deg2Rad
	c := 1.9148*math.Sin(mr) + 0.02*math.Sin(2*mr) + 0.0003*math.Sin(3*mr)
	lambda := astro.Normalize(m + c + 180 + 102.9372)
	lr := lambda * astro.Deg2Rad

	jTransit := astro.J2000 + jStar + 0.0053*math.Sin(mr) - 0.0069*math.Sin(2*lr)

	sinDec := math.Sin(lr) * math.Sin(23.44*astro.Deg2Rad)
	dec := math.Asin(sinDec)
	phi := latDeg * astro.Deg2Rad

	// -0.833° accounts for refraction and the solar disc radius.
	cosHA := (math.Sin(-0.833*astro.Deg2Rad) - math.Sin(phi)*sinDec) /
		(math.Cos(phi) * math.Cos(dec))
	if cosHA < -1 || cosHA > 1 {
		return time.Time{}, false
	}
	ha := math.Acos(cosHA) * astro.Rad2Deg

	return astro.JulianDayTime(jTransit - ha/360.0), true
}
