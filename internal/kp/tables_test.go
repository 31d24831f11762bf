package kp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TablesSuite struct {
	suite.Suite
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesSuite))
}

func (s *TablesSuite) TestYears() {
	s.Run("weights sum to the full cycle", func() {
		total := 0.0
		for _, l := range Order {
			total += Years[l]
		}
		s.Equal(TotalYears, total)
	})

	s.Run("every lord in the cycle has a weight", func() {
		for _, l := range Order {
			s.True(Valid(l), string(l))
		}
		s.False(Valid(Lord("Pluto")))
		s.False(Valid(Lord("")))
	})
}

func (s *TablesSuite) TestNext() {
	s.Equal(Venus, Next(Ketu))
	s.Equal(Sun, Next(Venus))
	s.Equal(Ketu, Next(Mercury), "cycle wraps")

	s.Run("nine steps return to start", func() {
		l := Saturn
		for i := 0; i < len(Order); i++ {
			l = Next(l)
		}
		s.Equal(Saturn, l)
	})
}

func (s *TablesSuite) TestNames() {
	s.Equal("Ashwini", NakshatraNames[0])
	s.Equal("Revati", NakshatraNames[26])
	s.Equal("Shukla Pratipada", TithiNames[0])
	s.Equal("Purnima", TithiNames[14])
	s.Equal("Amavasya", TithiNames[29])
	s.Equal("Vishkumbha", YogaNames[0])
	s.Equal("Vaidhriti", YogaNames[26])
}

func (s *TablesSuite) TestKaranaName() {
	s.Run("fixed opening slot", func() {
		s.Equal("Kimstughna", KaranaName(1))
	})

	s.Run("repeating middle slots", func() {
		s.Equal("Bava", KaranaName(2))
		s.Equal("Vishti", KaranaName(8))
		s.Equal("Bava", KaranaName(9))
		s.Equal("Vishti", KaranaName(57))
	})

	s.Run("fixed closing slots", func() {
		s.Equal("Shakuni", KaranaName(58))
		s.Equal("Chatushpada", KaranaName(59))
		s.Equal("Naga", KaranaName(60))
	})
}

func (s *TablesSuite) TestRulershipTables() {
	s.Equal(Mars, SignLords[0], "Aries")
	s.Equal(Jupiter, SignLords[11], "Pisces")
	s.Equal(Sun, WeekdayLords[time.Sunday])
	s.Equal(Saturn, WeekdayLords[time.Saturday])
}
