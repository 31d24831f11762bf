// Package kp holds the fixed KP/Vimshottari lookup tables and the sub-lord
// lattice that maps a sidereal longitude to its star/sub/sub-sub lordship.
package kp

// Lord is one of the nine classical planet lords.
type Lord string

const (
	Ketu    Lord = "Ketu"
	Venus   Lord = "Venus"
	Sun     Lord = "Sun"
	Moon    Lord = "Moon"
	Mars    Lord = "Mars"
	Rahu    Lord = "Rahu"
	Jupiter Lord = "Jupiter"
	Saturn  Lord = "Saturn"
	Mercury Lord = "Mercury"
)

// Order is the canonical Vimshottari cycle. Every subdivision at every level
// walks this ring.
var Order = [9]Lord{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// Years maps each lord to its Vimshottari weight in years. The weights sum to
// TotalYears.
var Years = map[Lord]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// TotalYears is the full Vimshottari cycle span.
const TotalYears = 120.0

// NakshatraSpan is the width of one nakshatra: 13°20′.
const NakshatraSpan = 360.0 / 27.0

// Valid reports whether l is one of the nine lords.
func Valid(l Lord) bool {
	_, ok := Years[l]
	return ok
}

// Next returns the lord following l in the canonical cycle.
func Next(l Lord) Lord {
	for i, o := range Order {
		if o == l {
			return Order[(i+1)%len(Order)]
		}
	}
	return Order[0]
}

// NakshatraNames lists the 27 nakshatras in zodiac order.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// TithiNames lists the 30 tithis of a lunar month.
var TithiNames = [30]string{
	"Shukla Pratipada", "Shukla Dwitiya", "Shukla Tritiya", "Shukla Chaturthi",
	"Shukla Panchami", "Shukla Shashthi", "Shukla Saptami", "Shukla Ashtami",
	"Shukla Navami", "Shukla Dashami", "Shukla Ekadashi", "Shukla Dwadashi",
	"Shukla Trayodashi", "Shukla Chaturdashi", "Purnima",
	"Krishna Pratipada", "Krishna Dwitiya", "Krishna Tritiya", "Krishna Chaturthi",
	"Krishna Panchami", "Krishna Shashthi", "Krishna Saptami", "Krishna Ashtami",
	"Krishna Navami", "Krishna Dashami", "Krishna Ekadashi", "Krishna Dwadashi",
	"Krishna Trayodashi", "Krishna Chaturdashi", "Amavasya",
}

// YogaNames lists the 27 yogas.
var YogaNames = [27]string{
	"Vishkumbha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarman", "Dhriti", "Shoola", "Ganda", "Vriddhi", "Dhruva", "Vyaghata",
	"Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
}

// Karana naming: slot 1 is Kimstughna, slots 2..57 repeat the seven movable
// karanas, slots 58..60 are the fixed closing three.
var (
	karanaRepeating = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Garaja", "Vanija", "Vishti"}
	karanaClosing   = [3]string{"Shakuni", "Chatushpada", "Naga"}
)

// KaranaName returns the name for a 1-based karana slot in 1..60.
func KaranaName(slot int) string {
	switch {
	case slot <= 1:
		return "Kimstughna"
	case slot >= 58:
		return karanaClosing[slot-58]
	default:
		return karanaRepeating[(slot-2)%7]
	}
}

// SignLords maps each 30° zodiac sign, Aries first, to its ruling planet.
var SignLords = [12]Lord{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

// WeekdayLords maps time.Weekday (Sunday = 0) to the day's ruling planet.
var WeekdayLords = [7]Lord{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
