package astro

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: Normalize always lands in [0, 360) and is idempotent, for any
// finite input angle.
func TestProperty_NormalizeRangeAndIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Normalize lands in [0,360) and is idempotent", prop.ForAll(
		func(deg float64) bool {
			n := Normalize(deg)
			if n < 0 || n >= 360 {
				return false
			}
			return Normalize(n) == n
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// Property: ToDMS reconstructs the normalized angle to within half an
// arcsecond, its rounding granularity.
func TestProperty_ToDMSReconstruction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("DMS rendering is within half an arcsecond", prop.ForAll(
		func(deg float64) bool {
			d := ToDMS(deg)
			if d.Min < 0 || d.Min > 59 || d.Sec < 0 || d.Sec > 59 {
				return false
			}
			back := float64(d.Deg) + float64(d.Min)/60.0 + float64(d.Sec)/3600.0
			diff := math.Abs(back - Normalize(deg))
			if diff > 180 {
				diff = 360 - diff
			}
			return diff <= 0.5/3600.0+1e-9
		},
		gen.Float64Range(-720, 720),
	))

	properties.TestingRun(t)
}
