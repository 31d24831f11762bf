// Package panchang computes the lunar-calendar elements of a solar day: the
// tithi, nakshatra, yoga and karana in effect at sunrise, each with the
// instant it ends inside the sunrise-to-next-sunrise window.
package panchang

import (
	"context"
	"math"
	"time"

	"jyotish/internal/astro"
	"jyotish/internal/ephemeris"
	"jyotish/internal/kp"
)

const (
	tithiSpan  = 12.0
	karanaSpan = 6.0
	starSpan   = kp.NakshatraSpan
)

// bisectIterations bounds the threshold-crossing search; 44 halvings of a
// 24-hour window resolve well below a second.
const bisectIterations = 44

// Element is one day element with its end instant (UTC).
type Element struct {
	Name string
	End  time.Time
}

// Day is the full panchangam for one sunrise-to-sunrise window.
type Day struct {
	Sunrise     time.Time // UTC
	NextSunrise time.Time // UTC
	Vaara       string    // weekday at sunrise, local
	Tithi       Element
	Nakshatra   Element
	Pada        int // quarter of the nakshatra, 1..4
	Yoga        Element
	Karana      Element
}

// Solver evaluates day elements through the ephemeris capabilities.
type Solver struct {
	provider ephemeris.Provider
	sunrise  ephemeris.SunriseFinder
}

// NewSolver wires the solver to its collaborators.
func NewSolver(provider ephemeris.Provider, sunrise ephemeris.SunriseFinder) *Solver {
	return &Solver{provider: provider, sunrise: sunrise}
}

// Compute resolves the panchangam for the local calendar day containing
// local, for an observer at lat/lon, using the given ayanamsa.
func (s *Solver) Compute(ctx context.Context, local time.Time, latDeg, lonEastDeg, ayanamsaDeg float64) (Day, error) {
	zone := local.Location()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)

	sunrise, nextSunrise, err := s.sunrise.SunriseWindow(ctx, latDeg, lonEastDeg, midnight)
	if err != nil {
		return Day{}, err
	}

	sun0, moon0, err := s.sunMoonSidereal(ctx, sunrise, latDeg, lonEastDeg, ayanamsaDeg)
	if err != nil {
		return Day{}, err
	}

	delta0 := astro.Normalize(moon0 - sun0)
	yoga0 := astro.Normalize(moon0 + sun0)

	// Angles evaluated during bisection are unwrapped against their sunrise
	// value so a 360° boundary inside the window cannot break monotonicity.
	deltaAt := func(t time.Time) (float64, error) {
		sun, moon, err := s.sunMoonSidereal(ctx, t, latDeg, lonEastDeg, ayanamsaDeg)
		if err != nil {
			return 0, err
		}
		return unwrapNear(astro.Normalize(moon-sun), delta0), nil
	}
	moonAt := func(t time.Time) (float64, error) {
		_, moon, err := s.sunMoonSidereal(ctx, t, latDeg, lonEastDeg, ayanamsaDeg)
		if err != nil {
			return 0, err
		}
		return unwrapNear(moon, moon0), nil
	}
	yogaAt := func(t time.Time) (float64, error) {
		sun, moon, err := s.sunMoonSidereal(ctx, t, latDeg, lonEastDeg, ayanamsaDeg)
		if err != nil {
			return 0, err
		}
		return unwrapNear(astro.Normalize(moon+sun), yoga0), nil
	}

	day := Day{
		Sunrise:     sunrise,
		NextSunrise: nextSunrise,
		Vaara:       sunrise.In(zone).Weekday().String(),
	}

	tithiIdx := int(math.Floor(delta0 / tithiSpan))
	day.Tithi.Name = kp.TithiNames[tithiIdx%30]
	day.Tithi.End, err = bisectCrossing(deltaAt, float64(tithiIdx+1)*tithiSpan, sunrise, nextSunrise)
	if err != nil {
		return Day{}, err
	}

	nakIdx := int(math.Floor(moon0 / starSpan))
	day.Nakshatra.Name = kp.NakshatraNames[nakIdx%27]
	inStar := moon0 - float64(nakIdx)*starSpan
	day.Pada = int(math.Floor(inStar/(starSpan/4.0))) + 1
	day.Nakshatra.End, err = bisectCrossing(moonAt, float64(nakIdx+1)*starSpan, sunrise, nextSunrise)
	if err != nil {
		return Day{}, err
	}

	yogaIdx := int(math.Floor(yoga0 / starSpan))
	day.Yoga.Name = kp.YogaNames[yogaIdx%27]
	day.Yoga.End, err = bisectCrossing(yogaAt, float64(yogaIdx+1)*starSpan, sunrise, nextSunrise)
	if err != nil {
		return Day{}, err
	}

	karanaIdx := int(math.Floor(delta0 / karanaSpan))
	day.Karana.Name = kp.KaranaName(karanaIdx + 1)
	day.Karana.End, err = bisectCrossing(deltaAt, float64(karanaIdx+1)*karanaSpan, sunrise, nextSunrise)
	if err != nil {
		return Day{}, err
	}

	return day, nil
}

// sunMoonSidereal returns the sidereal longitudes of Sun and Moon at t.
func (s *Solver) sunMoonSidereal(ctx context.Context, t time.Time, latDeg, lonEastDeg, ayanamsaDeg float64) (sun, moon float64, err error) {
	res, err := s.provider.Positions(ctx, t, latDeg, lonEastDeg)
	if err != nil {
		return 0, 0, err
	}
	sunPos, err := ephemeris.FindBody(res.Positions, "Sun")
	if err != nil {
		return 0, 0, err
	}
	moonPos, err := ephemeris.FindBody(res.Positions, "Moon")
	if err != nil {
		return 0, 0, err
	}
	return astro.Siderealize(sunPos.Lon, ayanamsaDeg), astro.Siderealize(moonPos.Lon, ayanamsaDeg), nil
}

// unwrapNear shifts x by a full turn when it sits across the 360° boundary
// from the reference value.
func unwrapNear(x, ref float64) float64 {
	switch d := x - ref; {
	case d < -180:
		return x + 360.0
	case d > 180:
		return x - 360.0
	default:
		return x
	}
}

// bisectCrossing finds when fn crosses target inside [t0, t1], assuming fn is
// monotonic over the window. When the endpoint values do not bracket the
// target, the crossing is outside the window and t1 is returned unchanged.
func bisectCrossing(fn func(time.Time) (float64, error), target float64, t0, t1 time.Time) (time.Time, error) {
	f0, err := fn(t0)
	if err != nil {
		return time.Time{}, err
	}
	f1, err := fn(t1)
	if err != nil {
		return time.Time{}, err
	}
	if !((f0 <= target && target <= f1) || (f1 <= target && target <= f0)) {
		return t1, nil
	}

	a, b := t0, t1
	for i := 0; i < bisectIterations; i++ {
		mid := a.Add(b.Sub(a) / 2)
		fm, err := fn(mid)
		if err != nil {
			return time.Time{}, err
		}
		if fm < target {
			a = mid
		} else {
			b = mid
		}
	}
	return b, nil
}
