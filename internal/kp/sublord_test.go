package kp

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/suite"
)

type SubLordSuite struct {
	suite.Suite
}

func TestSubLordSuite(t *testing.T) {
	suite.Run(t, new(SubLordSuite))
}

func (s *SubLordSuite) TestZeroDegrees() {
	// The start of Ashwini: every level collapses to the star's own lord.
	got := SubLords(0.0)
	s.Equal(Ketu, got.StarLord)
	s.Equal(Ketu, got.SubLord)
	s.Equal(Ketu, got.SubSubLord)
}

func (s *SubLordSuite) TestStarLordCycle() {
	for i := 0; i < 27; i++ {
		lon := (float64(i) + 0.5) * NakshatraSpan
		s.Equal(Order[i%9], SubLords(lon).StarLord, "nakshatra %d", i)
	}
}

func (s *SubLordSuite) TestSubStartsAtStarLord() {
	// Inside Ashwini (Ketu's star) the first sub-span is Ketu's own:
	// 13°20' x 7/120 = 0.7777...°.
	ketuSub := NakshatraSpan * Years[Ketu] / TotalYears

	s.Run("just inside the first sub", func() {
		got := SubLords(ketuSub - 0.01)
		s.Equal(Ketu, got.StarLord)
		s.Equal(Ketu, got.SubLord)
	})

	s.Run("just past the first sub", func() {
		got := SubLords(ketuSub + 0.01)
		s.Equal(Ketu, got.StarLord)
		s.Equal(Venus, got.SubLord)
	})

	s.Run("second nakshatra restarts at Venus", func() {
		got := SubLords(NakshatraSpan + 0.001)
		s.Equal(Venus, got.StarLord)
		s.Equal(Venus, got.SubLord)
	})
}

func (s *SubLordSuite) TestSubSubStartsAtSubLord() {
	// Land inside Ketu star / Venus sub; the sub-sub walk must begin at Venus.
	ketuSub := NakshatraSpan * Years[Ketu] / TotalYears
	got := SubLords(ketuSub + 0.001)
	s.Equal(Venus, got.SubLord)
	s.Equal(Venus, got.SubSubLord)
}

func (s *SubLordSuite) TestBoundaryInclusive() {
	// An offset exactly on a cumulative span boundary belongs to the span
	// that ends there.
	ketuSub := NakshatraSpan * Years[Ketu] / TotalYears
	lord, offsetIn, width := locate(Ketu, ketuSub, NakshatraSpan)
	s.Equal(Ketu, lord)
	s.InDelta(ketuSub, offsetIn, 1e-12)
	s.InDelta(ketuSub, width, 1e-12)
}

func (s *SubLordSuite) TestLocateSpansPartition() {
	// The nine sub-spans cover the parent span exactly.
	total := 0.0
	cur := Moon
	for i := 0; i < len(Order); i++ {
		total += NakshatraSpan * Years[cur] / TotalYears
		cur = Next(cur)
	}
	s.InDelta(NakshatraSpan, total, 1e-12)
}

func (s *SubLordSuite) TestNormalizesInput() {
	s.Equal(SubLords(10.0), SubLords(370.0))
	s.Equal(SubLords(350.0), SubLords(-10.0))
}

// Property: the triple is always made of valid lords, and the star lord
// always matches the nakshatra index cycle.
func TestProperty_SubLordsValid(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("triple is valid and star lord follows the cycle", prop.ForAll(
		func(lon float64) bool {
			got := SubLords(lon)
			if !Valid(got.StarLord) || !Valid(got.SubLord) || !Valid(got.SubSubLord) {
				return false
			}
			idx := int(lon / NakshatraSpan)
			return got.StarLord == Order[idx%9]
		},
		gen.Float64Range(0, 359.999),
	))

	properties.TestingRun(t)
}
