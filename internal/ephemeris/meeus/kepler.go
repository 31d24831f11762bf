package meeus

import (
	"math"

	"jyotish/internal/astro"
)

// elements are Keplerian orbital elements at J2000 plus per-century rates
// (JPL approximate planetary positions, valid 1800–2050). Angles in degrees,
// semi-major axis in AU, referred to the J2000 ecliptic.
type elements struct {
	a, e, i, l, lp, om         float64 // semi-major, eccentricity, inclination, mean longitude, longitude of perihelion, longitude of node
	da, de, di, dl, dlp, dom   float64
}

var planetElements = map[string]elements{
	"Mercury": {0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
	"Venus": {0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
	"EMBary": {1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
	"Mars": {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
	"Jupiter": {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
	"Saturn": {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
	"Uranus": {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
	"Neptune": {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
	"Pluto": {39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
		-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482},
}

// vec3 is a rectangular ecliptic position in AU.
type vec3 struct{ x, y, z float64 }

func (v vec3) sub(o vec3) vec3 { return vec3{v.x - o.x, v.y - o.y, v.z - o.z} }

func (v vec3) norm() float64 { return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z) }

// heliocentric returns a body's J2000-ecliptic rectangular position at T
// Julian centuries since J2000.
func heliocentric(el elements, t float64) vec3 {
	a := el.a + el.da*t
	e := el.e + el.de*t
	i := (el.i + el.di*t) * astro.Deg2Rad
	l := el.l + el.dl*t
	lp := el.lp + el.dlp*t
	om := (el.om + el.dom*t) * astro.Deg2Rad

	w := (lp - (el.om + el.dom*t)) * astro.Deg2Rad // argument of perihelion
	m := astro.Normalize(l-lp) * astro.Deg2Rad     // mean anomaly

	ea := solveKepler(m, e)

	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(om), math.Sin(om)
	ci, si := math.Cos(i), math.Sin(i)

	return vec3{
		x: (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp,
		y: (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp,
		z: (sw*si)*xp + (cw*si)*yp,
	}
}

// solveKepler iterates Newton's method on Kepler's equation. The bodies here
// all have e well below 0.26, so a handful of iterations converges far past
// the precision this provider claims.
func solveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for i := 0; i < 8; i++ {
		d := (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
		ea -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}

// precessionToDate shifts a J2000-frame ecliptic longitude to the equinox of
// date. Low-order: general precession in longitude only.
func precessionToDate(lonJ2000Deg, t float64) float64 {
	return astro.Normalize(lonJ2000Deg + 1.3969713*t + 0.0003086*t*t)
}

// sphericalOfDate converts a geocentric J2000 rectangular vector to
// of-date ecliptic longitude/latitude (degrees) and distance (AU).
func sphericalOfDate(v vec3, t float64) (lon, lat, dist float64) {
	dist = v.norm()
	lon = precessionToDate(math.Atan2(v.y, v.x)*astro.Rad2Deg, t)
	lat = math.Atan2(v.z, math.Hypot(v.x, v.y)) * astro.Rad2Deg
	return lon, lat, dist
}
