package dasha

import (
	"math"

	"jyotish/internal/astro"
	"jyotish/internal/kp"
)

// MoonEntry derives the running mahadasha from the Moon's sidereal longitude:
// the lord of the nakshatra the Moon occupies, and the years remaining of
// that lord's period. The balance is the unelapsed fraction of the nakshatra
// scaled by the lord's full weight, so a Moon exactly on a nakshatra boundary
// yields the lord's full years.
func MoonEntry(moonSiderealLonDeg float64) (kp.Lord, float64) {
	lon := astro.Normalize(moonSiderealLonDeg)

	idx := int(math.Floor(lon / kp.NakshatraSpan))
	if idx > 26 {
		idx = 26
	}
	lord := kp.Order[idx%9]

	offset := lon - float64(idx)*kp.NakshatraSpan
	elapsed := offset / kp.NakshatraSpan
	balance := kp.Years[lord] * (1.0 - elapsed)
	return lord, balance
}
