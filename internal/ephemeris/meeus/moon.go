package meeus

import (
	"math"

	"jyotish/internal/astro"
)

// Truncated lunar theory (Schlyter's compact model): mean elements plus the
// dominant perturbation terms. Referred to the ecliptic of date, which is
// what the tropical contract wants, so no precession shift is applied here.
// Accuracy on the order of arcminutes; the Provider doc states the contract.

func moonOfDate(jd float64) (lonDeg, latDeg, distAU float64) {
	d := jd - 2451543.5

	n := astro.Normalize(125.1228 - 0.0529538083*d)  // node
	const inc = 5.1454 * astro.Deg2Rad               // inclination
	w := astro.Normalize(318.0634 + 0.1643573223*d)  // argument of perigee
	const a = 60.2666                                // earth radii
	e := 0.054900                                    // eccentricity
	mm := astro.Normalize(115.3654 + 13.0649929509*d) // mean anomaly

	ea := solveKepler(mm*astro.Deg2Rad, e)
	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	v := astro.Normalize(math.Atan2(yp, xp) * astro.Rad2Deg) // true anomaly
	r := math.Hypot(xp, yp)

	nr := n * astro.Deg2Rad
	vw := (v + w) * astro.Deg2Rad

	x := r * (math.Cos(nr)*math.Cos(vw) - math.Sin(nr)*math.Sin(vw)*math.Cos(inc))
	y := r * (math.Sin(nr)*math.Cos(vw) + math.Cos(nr)*math.Sin(vw)*math.Cos(inc))
	z := r * math.Sin(vw) * math.Sin(inc)

	lon := astro.Normalize(math.Atan2(y, x) * astro.Rad2Deg)
	lat := math.Atan2(z, math.Hypot(x, y)) * astro.Rad2Deg

	// Perturbation arguments.
	ms := astro.Normalize(356.0470 + 0.9856002585*d)  // sun mean anomaly
	ls := astro.Normalize(ms + 282.9404 + 4.70935e-5*d) // sun mean longitude
	lm := astro.Normalize(n + w + mm)                  // moon mean longitude
	dd := astro.Normalize(lm - ls)                     // mean elongation
	f := astro.Normalize(lm - n)                       // argument of latitude

	sin := func(deg float64) float64 { return math.Sin(deg * astro.Deg2Rad) }
	cos := func(deg float64) float64 { return math.Cos(deg * astro.Deg2Rad) }

	lon += -1.274*sin(mm-2*dd) + // evection
		0.658*sin(2*dd) + // variation
		-0.186*sin(ms) + // yearly equation
		-0.059*sin(2*mm-2*dd) +
		-0.057*sin(mm-2*dd+ms) +
		0.053*sin(mm+2*dd) +
		0.046*sin(2*dd-ms) +
		-0.041*sin(mm-ms) +
		-0.035*sin(dd) + // parallactic equation
		-0.031*sin(mm+ms) +
		-0.015*sin(2*f-2*dd) +
		0.011*sin(mm-4*dd)

	lat += -0.173*sin(f-2*dd) +
		-0.055*sin(mm-f-2*dd) +
		-0.046*sin(mm+f-2*dd) +
		0.033*sin(f+2*dd) +
		0.017*sin(2*mm+f)

	rr := r - 0.58*cos(mm-2*dd) - 0.46*cos(2*dd)

	const earthRadiusAU = 6378.137 / 149597870.7
	return astro.Normalize(lon), lat, rr * earthRadiusAU
}
