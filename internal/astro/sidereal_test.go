package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SiderealSuite struct {
	suite.Suite
}

func TestSiderealSuite(t *testing.T) {
	suite.Run(t, new(SiderealSuite))
}

func (s *SiderealSuite) TestMeanObliquity() {
	s.Run("J2000 value", func() {
		s.InDelta(23.4392911, MeanObliquity(J2000), 1e-6)
	})

	s.Run("slowly decreasing", func() {
		now := MeanObliquity(J2000)
		later := MeanObliquity(J2000 + 36525.0)
		s.Less(later, now)
		s.InDelta(now, later, 0.02)
	})
}

func (s *SiderealSuite) TestGMST() {
	s.Run("J2000 value", func() {
		s.InDelta(280.46061837, GMST(J2000), 1e-9)
	})

	s.Run("advances about 361 degrees per day", func() {
		d := Normalize(GMST(J2000+1.0) - GMST(J2000))
		s.InDelta(0.98564736629, d, 1e-6)
	})

	s.Run("in range", func() {
		for jd := J2000 - 10000; jd < J2000+10000; jd += 997.25 {
			g := GMST(jd)
			s.GreaterOrEqual(g, 0.0)
			s.Less(g, 360.0)
		}
	})
}

func (s *SiderealSuite) TestLST() {
	s.InDelta(Normalize(GMST(J2000)+77.5946), LST(J2000, 77.5946), 1e-9)
	s.InDelta(LST(J2000, 10.0)*Deg2Rad, LSTRadians(J2000, 10.0), 1e-12)
}

func (s *SiderealSuite) TestEclipticToEquatorial() {
	eps := 23.44 * Deg2Rad

	s.Run("vernal point maps to origin", func() {
		ra, dec := EclipticToEquatorial(0, 0, eps)
		s.InDelta(0.0, ra, 1e-12)
		s.InDelta(0.0, dec, 1e-12)
	})

	s.Run("solstice point has maximum declination", func() {
		ra, dec := EclipticToEquatorial(math.Pi/2, 0, eps)
		s.InDelta(math.Pi/2, ra, 1e-12)
		s.InDelta(eps, dec, 1e-12)
	})

	s.Run("right ascension is non-negative", func() {
		ra, _ := EclipticToEquatorial(4.5, -0.02, eps)
		s.GreaterOrEqual(ra, 0.0)
		s.Less(ra, 2*math.Pi)
	})
}

func (s *SiderealSuite) TestMCLongitude() {
	// The midheaven deliberately ignores obliquity, so it reproduces the
	// sidereal time angle itself.
	for _, theta := range []float64{0, 0.5, 2.0, 5.9} {
		s.InDelta(Normalize(theta*Rad2Deg), MCLongitude(theta), 1e-9)
	}
}

func (s *SiderealSuite) TestAyanamsa() {
	s.Run("lahiri at J2000", func() {
		s.InDelta(23.85675, LahiriAyanamsa(J2000), 1e-9)
	})

	s.Run("kp is lahiri minus fixed offset", func() {
		for _, jd := range []float64{J2000, J2000 + 9000, J2000 - 9000} {
			s.InDelta(LahiriAyanamsa(jd)-0.1015, KPAyanamsa(jd), 1e-12)
		}
	})

	s.Run("about 24 degrees in 2025", func() {
		jd := J2000 + 25*365.25
		s.InDelta(24.2, LahiriAyanamsa(jd), 0.1)
	})
}

func (s *SiderealSuite) TestMeanLunarNode() {
	s.Run("J2000 value", func() {
		s.InDelta(125.04452, MeanLunarNode(J2000), 1e-9)
	})

	s.Run("regresses", func() {
		a := MeanLunarNode(J2000)
		b := MeanLunarNode(J2000 + 1.0)
		d := b - a
		if d > 180 {
			d -= 360
		}
		s.Less(d, 0.0)
		s.InDelta(-0.0529, d, 1e-3)
	})
}

func (s *SiderealSuite) TestSiderealize() {
	s.InDelta(346.0, Siderealize(10.0, 24.0), 1e-12)
	s.InDelta(0.0, Siderealize(24.0, 24.0), 1e-12)
}
