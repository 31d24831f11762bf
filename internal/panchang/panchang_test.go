package panchang

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"jyotish/internal/astro"
	"jyotish/internal/ephemeris"
)

// linearSky is a deterministic ephemeris: Sun and Moon move at constant
// rates from their values at the fake sunrise, so element end times have
// closed forms the solver must reproduce.
type linearSky struct {
	epoch    time.Time // the sunrise instant
	sun0     float64   // tropical longitude at epoch, degrees
	moon0    float64
	sunRate  float64 // degrees per day
	moonRate float64
}

func (f *linearSky) Positions(_ context.Context, utc time.Time, _, _ float64) (ephemeris.Result, error) {
	days := utc.Sub(f.epoch).Hours() / 24.0
	positions := []ephemeris.Position{
		{Name: "Sun", Lon: astro.Normalize(f.sun0 + f.sunRate*days), SpeedLon: f.sunRate},
		{Name: "Moon", Lon: astro.Normalize(f.moon0 + f.moonRate*days), SpeedLon: f.moonRate},
	}
	return ephemeris.Result{JDUT: astro.JulianDay(utc), UTC: utc, Positions: positions}, nil
}

func (f *linearSky) SunriseWindow(_ context.Context, _, _ float64, _ time.Time) (time.Time, time.Time, error) {
	return f.epoch, f.epoch.Add(24 * time.Hour), nil
}

type PanchangSuite struct {
	suite.Suite
	ctx context.Context
}

func TestPanchangSuite(t *testing.T) {
	suite.Run(t, new(PanchangSuite))
}

func (s *PanchangSuite) SetupTest() {
	s.ctx = context.Background()
}

// 2025-01-05 is a Sunday; sunrise at 06:00 UTC keeps the weekday unambiguous.
var sunriseUTC = time.Date(2025, 1, 5, 6, 0, 0, 0, time.UTC)

func (s *PanchangSuite) solve(sky *linearSky) Day {
	solver := NewSolver(sky, sky)
	local := sunriseUTC.Add(2 * time.Hour) // any instant of the same UTC day
	day, err := solver.Compute(s.ctx, local, 13.0827, 80.2707, 0.0)
	s.Require().NoError(err)
	return day
}

func (s *PanchangSuite) TestElementsAtSunrise() {
	// Moon-Sun elongation at sunrise: 11.9° -> first tithi, second karana
	// slot. Moon at 1.9° -> Ashwini, first pada. Yoga sum 351.9° -> the 27th.
	sky := &linearSky{
		epoch:    sunriseUTC,
		sun0:     350.0,
		moon0:    1.9,
		sunRate:  1.0,
		moonRate: 13.2,
	}
	day := s.solve(sky)

	s.True(day.Sunrise.Equal(sunriseUTC))
	s.True(day.NextSunrise.Equal(sunriseUTC.Add(24 * time.Hour)))
	s.Equal("Sunday", day.Vaara)

	s.Equal("Shukla Pratipada", day.Tithi.Name)
	s.Equal("Ashwini", day.Nakshatra.Name)
	s.Equal(1, day.Pada)
	s.Equal("Vaidhriti", day.Yoga.Name)
	s.Equal("Bava", day.Karana.Name)
}

func (s *PanchangSuite) TestEndTimes() {
	sky := &linearSky{
		epoch:    sunriseUTC,
		sun0:     350.0,
		moon0:    1.9,
		sunRate:  1.0,
		moonRate: 13.2,
	}
	day := s.solve(sky)

	elongationRate := sky.moonRate - sky.sunRate // 12.2 deg/day

	s.Run("tithi ends when elongation reaches 12 degrees", func() {
		wantDays := (12.0 - 11.9) / elongationRate
		want := sunriseUTC.Add(time.Duration(wantDays * 24 * float64(time.Hour)))
		s.WithinDuration(want, day.Tithi.End, time.Second)
	})

	s.Run("karana ends at the same crossing", func() {
		s.WithinDuration(day.Tithi.End, day.Karana.End, time.Second)
	})

	s.Run("nakshatra ends when the moon leaves Ashwini", func() {
		wantDays := (360.0/27.0 - 1.9) / sky.moonRate
		want := sunriseUTC.Add(time.Duration(wantDays * 24 * float64(time.Hour)))
		s.WithinDuration(want, day.Nakshatra.End, time.Second)
	})

	s.Run("yoga ends when the sum closes the circle", func() {
		wantDays := (360.0 - 351.9) / (sky.moonRate + sky.sunRate)
		want := sunriseUTC.Add(time.Duration(wantDays * 24 * float64(time.Hour)))
		s.WithinDuration(want, day.Yoga.End, time.Second)
	})
}

func (s *PanchangSuite) TestBoundaryIndexing() {
	s.Run("elongation just under a span boundary", func() {
		sky := &linearSky{epoch: sunriseUTC, sun0: 0, moon0: 11.9, sunRate: 1.0, moonRate: 13.2}
		s.Equal("Shukla Pratipada", s.solve(sky).Tithi.Name)
	})

	s.Run("elongation exactly on a span boundary", func() {
		sky := &linearSky{epoch: sunriseUTC, sun0: 0, moon0: 12.0, sunRate: 1.0, moonRate: 13.2}
		s.Equal("Shukla Dwitiya", s.solve(sky).Tithi.Name)
	})
}

func (s *PanchangSuite) TestUnbracketedCrossingReturnsWindowEnd() {
	// A moon this slow cannot finish the tithi within the day; the end time
	// degrades to the window end instead of extrapolating.
	sky := &linearSky{epoch: sunriseUTC, sun0: 0, moon0: 0.5, sunRate: 1.0, moonRate: 1.5}
	day := s.solve(sky)
	s.True(day.Tithi.End.Equal(day.NextSunrise))
}

func (s *PanchangSuite) TestElongationAcrossZero() {
	// Sunrise elongation 355°: Amavasya, ending when the wrapped difference
	// reaches 360°. The unwrap keeps the bisection monotonic across 0°.
	sky := &linearSky{epoch: sunriseUTC, sun0: 10.0, moon0: 5.0, sunRate: 1.0, moonRate: 13.2}
	day := s.solve(sky)

	s.Equal("Amavasya", day.Tithi.Name)
	wantDays := (360.0 - 355.0) / (sky.moonRate - sky.sunRate)
	want := sunriseUTC.Add(time.Duration(wantDays * 24 * float64(time.Hour)))
	s.WithinDuration(want, day.Tithi.End, time.Second)
}

func (s *PanchangSuite) TestPadaQuarters() {
	for _, tc := range []struct {
		moon float64
		pada int
	}{
		{0.5, 1},
		{3.4, 2},
		{7.0, 3},
		{13.0, 4},
	} {
		sky := &linearSky{epoch: sunriseUTC, sun0: 300, moon0: tc.moon, sunRate: 1.0, moonRate: 13.2}
		s.Equal(tc.pada, s.solve(sky).Pada, "moon at %.1f", tc.moon)
	}
}
