package kp

import (
	"math"

	"jyotish/internal/astro"
)

// LordshipTriple is the three-level KP lordship of an ecliptic point.
type LordshipTriple struct {
	StarLord   Lord `json:"starLord"`
	SubLord    Lord `json:"subLord"`
	SubSubLord Lord `json:"subSubLord"`
}

// SubLords resolves the star, sub and sub-sub lords of a sidereal longitude.
//
// The 360° circle splits into 27 equal stars whose lords repeat the canonical
// cycle; inside a star the nine sub-spans are proportional to each lord's
// weight over 120, starting from the star's own lord; the sub-sub level
// applies the same rule again starting from the sub lord.
func SubLords(siderealLonDeg float64) LordshipTriple {
	lon := astro.Normalize(siderealLonDeg)

	starIndex := int(math.Floor(lon / NakshatraSpan))
	if starIndex > 26 {
		starIndex = 26
	}
	starLord := Order[starIndex%9]
	offset := lon - float64(starIndex)*NakshatraSpan

	subLord, subOffset, subSpan := locate(starLord, offset, NakshatraSpan)
	subSubLord, _, _ := locate(subLord, subOffset, subSpan)

	return LordshipTriple{StarLord: starLord, SubLord: subLord, SubSubLord: subSubLord}
}

// locate walks the nine proportional sub-spans of a parent span, starting at
// first, and returns the lord whose span contains offset plus the offset and
// width of that span. A boundary offset belongs to the span whose cumulative
// upper bound reaches it (inclusive); if float drift pushes the offset past
// every span, the last lord in the cycle wins.
func locate(first Lord, offset, span float64) (lord Lord, offsetInSpan, spanWidth float64) {
	acc := 0.0
	cur := first
	for i := 0; i < len(Order); i++ {
		w := span * (Years[cur] / TotalYears)
		if offset <= acc+w {
			return cur, offset - acc, w
		}
		acc += w
		cur = Next(cur)
	}
	// cur has wrapped back to first; the drift fallback is its predecessor,
	// i.e. the ninth span in the walk.
	last := first
	for i := 0; i < len(Order)-1; i++ {
		last = Next(last)
	}
	return last, 0, span * (Years[last] / TotalYears)
}
