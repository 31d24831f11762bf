// Package houses computes Placidus house cusps. Output is tropical only;
// sidereal conversion is the caller's job so ayanamsa can never be applied
// twice.
package houses

import (
	"math"

	"jyotish/internal/astro"
)

// Cusps holds the twelve house cusp longitudes in degrees, tropical.
// Asc and MC alias houses 1 and 10.
type Cusps struct {
	Asc    float64
	MC     float64
	Houses [12]float64
}

// House returns the cusp for house n in 1..12.
func (c Cusps) House(n int) float64 {
	return c.Houses[n-1]
}

const (
	coarseStepDeg   = 5.0
	coarseSpanDeg   = 120.0
	secantBracket   = 2.0 * astro.Deg2Rad
	secantMaxIter   = 40
	residualEpsilon = 1e-11
)

// Placidus computes the tropical cusp set for a Julian Day and geographic
// position (latitude degrees, longitude degrees east-positive).
//
// Houses 11, 12, 9 and 8 are solved numerically; 1 and 10 are the ascendant
// (flipped 180°, see astro.Ascendant) and MC; the rest are antipodes.
func Placidus(jd, latDeg, lonEastDeg float64) Cusps {
	eps := astro.MeanObliquity(jd) * astro.Deg2Rad
	phi := latDeg * astro.Deg2Rad
	theta := astro.LSTRadians(jd, lonEastDeg)

	asc := astro.Normalize(astro.Ascendant(theta, eps, phi) + 180.0)
	mc := astro.MCLongitude(theta)

	// Guess placement: 11/12 sit on the MC-30/-60 side with fractions -1/3
	// and -2/3 of the semi-diurnal arc, 9/8 mirror them on the other side.
	h11 := solveCusp(theta, eps, phi, mc-30.0, -1.0/3.0)
	h12 := solveCusp(theta, eps, phi, mc-60.0, -2.0/3.0)
	h9 := solveCusp(theta, eps, phi, mc+30.0, +1.0/3.0)
	h8 := solveCusp(theta, eps, phi, mc+60.0, +2.0/3.0)

	var c Cusps
	c.Asc = asc
	c.MC = mc
	c.Houses[0] = asc
	c.Houses[1] = astro.Normalize(h8 + 180.0)
	c.Houses[2] = astro.Normalize(h9 + 180.0)
	c.Houses[3] = astro.Normalize(mc + 180.0)
	c.Houses[4] = astro.Normalize(h11 + 180.0)
	c.Houses[5] = astro.Normalize(h12 + 180.0)
	c.Houses[6] = astro.Normalize(asc + 180.0)
	c.Houses[7] = h8
	c.Houses[8] = h9
	c.Houses[9] = mc
	c.Houses[10] = h11
	c.Houses[11] = h12
	return c
}

// Siderealize subtracts an ayanamsa from every cusp and renormalizes.
func Siderealize(c Cusps, ayanamsaDeg float64) Cusps {
	out := c
	out.Asc = astro.Siderealize(c.Asc, ayanamsaDeg)
	out.MC = astro.Siderealize(c.MC, ayanamsaDeg)
	for i, v := range c.Houses {
		out.Houses[i] = astro.Siderealize(v, ayanamsaDeg)
	}
	return out
}

// semiDiurnalArc returns acos(-tan(phi)·tan(dec)) with the product clamped to
// [-1,1]. High latitudes where the point never rises or never sets would push
// the product outside the domain; clamping yields a degenerate but finite arc
// instead of a NaN cusp.
func semiDiurnalArc(phi, dec float64) float64 {
	v := -math.Tan(phi) * math.Tan(dec)
	v = math.Max(-1.0, math.Min(1.0, v))
	return math.Acos(v)
}

// solveCusp finds the ecliptic longitude whose hour angle equals frac of its
// semi-diurnal arc: a coarse 5° grid around the analytic guess picks the
// starting point, then secant iteration refines it. Non-convergence is not an
// error; the best available estimate is returned.
func solveCusp(theta, eps, phi, guessDeg, frac float64) float64 {
	guess := astro.Normalize(guessDeg) * astro.Deg2Rad

	residual := func(lam float64) float64 {
		ra, dec := astro.EclipticToEquatorial(lam, 0.0, eps)
		target := frac * semiDiurnalArc(phi, dec)
		h := astro.WrapPi(theta - ra)
		return astro.WrapPi(h - target)
	}

	best := guess
	bestVal := math.Inf(1)
	for k := -coarseSpanDeg; k <= coarseSpanDeg; k += coarseStepDeg {
		lam := math.Mod(guess+k*astro.Deg2Rad, 2*math.Pi)
		if v := math.Abs(residual(lam)); v < bestVal {
			bestVal = v
			best = lam
		}
	}

	x0 := math.Mod(best-secantBracket+2*math.Pi, 2*math.Pi)
	x1 := math.Mod(best+secantBracket, 2*math.Pi)
	y0 := residual(x0)
	y1 := residual(x1)

	for i := 0; i < secantMaxIter; i++ {
		den := y1 - y0
		if math.Abs(den) < 1e-14 {
			break
		}
		x2 := math.Mod(x1-y1*(x1-x0)/den+2*math.Pi, 2*math.Pi)
		y2 := residual(x2)
		x0, y0 = x1, y1
		x1, y1 = x2, y2
		if math.Abs(y1) < residualEpsilon {
			break
		}
	}

	return astro.Normalize(x1 * astro.Rad2Deg)
}
