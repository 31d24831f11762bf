// Package meeus is the built-in ephemeris collaborator: truncated analytic
// series (JPL approximate Keplerian elements for the planets, a compact lunar
// theory for the Moon) behind the ephemeris.Provider interface. It trades
// precision for having no kernel file to load; swap in a higher-order
// provider without touching the computation core.
package meeus

import (
	"context"
	"time"

	"jyotish/internal/astro"
	"jyotish/internal/ephemeris"
)

// Provider implements ephemeris.Provider and ephemeris.SunriseFinder.
type Provider struct{}

// New returns the analytic provider. It is stateless and safe for concurrent use.
func New() *Provider { return &Provider{} }

// Positions returns tropical geocentric positions for the fixed roster, with
// longitude speeds approximated by symmetric finite difference at ±1 minute.
func (p *Provider) Positions(ctx context.Context, utc time.Time, latDeg, lonEastDeg float64) (ephemeris.Result, error) {
	utc = utc.UTC()
	jd := astro.JulianDay(utc)

	const minuteDays = 1.0 / 1440.0
	now := rosterAt(jd)
	plus := rosterAt(jd + minuteDays)
	minus := rosterAt(jd - minuteDays)

	positions := make([]ephemeris.Position, len(ephemeris.Bodies))
	for i, name := range ephemeris.Bodies {
		d := plus[i].lon - minus[i].lon
		if d > 180 {
			d -= 360
		}
		if d < -180 {
			d += 360
		}
		positions[i] = ephemeris.Position{
			Name:     name,
			Lon:      now[i].lon,
			Lat:      now[i].lat,
			DistAU:   now[i].dist,
			SpeedLon: d * 720.0, // per two minutes, scaled to deg/day
		}
	}

	return ephemeris.Result{JDUT: jd, UTC: utc, Positions: positions}, nil
}

type bodyState struct{ lon, lat, dist float64 }

// rosterAt evaluates the whole roster at one Julian Day.
func rosterAt(jd float64) []bodyState {
	t := astro.CenturiesSinceJ2000(jd)
	earth := heliocentric(planetElements["EMBary"], t)

	out := make([]bodyState, len(ephemeris.Bodies))
	for i, name := range ephemeris.Bodies {
		switch name {
		case "Sun":
			// Geocentric Sun is the reflected Earth vector.
			lon, lat, dist := sphericalOfDate(vec3{-earth.x, -earth.y, -earth.z}, t)
			out[i] = bodyState{lon, lat, dist}
		case "Moon":
			lon, lat, dist := moonOfDate(jd)
			out[i] = bodyState{lon, lat, dist}
		default:
			helio := heliocentric(planetElements[name], t)
			lon, lat, dist := sphericalOfDate(helio.sub(earth), t)
			out[i] = bodyState{lon, lat, dist}
		}
	}
	return out
}
