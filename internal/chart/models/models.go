// Package models defines the chart module's request and response shapes.
package models

import (
	"jyotish/internal/astro"
	"jyotish/internal/kp"
)

// BirthRequest identifies an instant and observer for chart computation.
type BirthRequest struct {
	DatetimeLocal string  `json:"datetimeLocal"` // e.g. "2025-12-28T08:30:00"
	TZ            string  `json:"tz"`            // IANA zone, e.g. "Asia/Kolkata"
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"` // east positive
	Ayanamsa      string  `json:"ayanamsa,omitempty"`
}

// PlacidusRequest computes cusps for an already-resolved Julian Day.
type PlacidusRequest struct {
	JDUT        float64 `json:"jd_ut"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AyanamsaDeg float64 `json:"ayanamsa_deg"`
}

// PlanetPosition is one body's tropical position enriched with KP lordship
// of its sidereal longitude.
type PlanetPosition struct {
	Name       string  `json:"name"`
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	DistAU     float64 `json:"dist_au"`
	SpeedLon   float64 `json:"speed_lon"`
	StarLord   kp.Lord `json:"starLord"`
	SubLord    kp.Lord `json:"subLord"`
	SubSubLord kp.Lord `json:"subSubLord"`
}

// PositionsResponse answers the positions endpoint.
type PositionsResponse struct {
	JDUT    float64          `json:"jd_ut"`
	UTCISO  string           `json:"utc_iso"`
	Planets []PlanetPosition `json:"planets"`
}

// PlacidusResponse carries the cusp sets keyed house1..house12 plus asc/mc.
type PlacidusResponse struct {
	CuspsTropical map[string]float64 `json:"cusps_tropical"`
	CuspsSidereal map[string]float64 `json:"cusps_sidereal"`
}

// KundaliPlanet is a sidereal placement in DMS form.
type KundaliPlanet struct {
	Planet    string    `json:"planet"`
	Longitude astro.DMS `json:"longitude"`
	Retro     bool      `json:"retro"`
}

// GrahaRow is one row of the KP graha table.
type GrahaRow struct {
	Planet     string    `json:"planet"`
	Longitude  astro.DMS `json:"longitude"`
	Retro      bool      `json:"retro"`
	StarLord   kp.Lord   `json:"starLord"`
	SubLord    kp.Lord   `json:"subLord"`
	SubSubLord kp.Lord   `json:"subSubLord"`
}

// BhavaCusp is a house cusp in DMS form.
type BhavaCusp struct {
	Bhava     int       `json:"bhava"`
	Longitude astro.DMS `json:"longitude"`
}

// BhavaRow is one row of the KP bhava table.
type BhavaRow struct {
	Bhava      int       `json:"bhava"`
	Longitude  astro.DMS `json:"longitude"`
	StarLord   kp.Lord   `json:"starLord"`
	SubLord    kp.Lord   `json:"subLord"`
	SubSubLord kp.Lord   `json:"subSubLord"`
}

// RulingPlanets are the KP ruling planets at the queried instant.
type RulingPlanets struct {
	DayLord      kp.Lord `json:"dayLord"`
	MoonSignLord kp.Lord `json:"moonSignLord"`
	AscSignLord  kp.Lord `json:"ascSignLord"`
	AscStarLord  kp.Lord `json:"ascStarLord"`
}

// Meta echoes the resolved request parameters.
type Meta struct {
	UTCISO           string  `json:"utc_iso"`
	JDUT             float64 `json:"jd_ut"`
	TZ               string  `json:"tz"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	Ayanamsa         string  `json:"ayanamsa"`
	AyanamsaValueDeg float64 `json:"ayanamsaValueDeg"`
}

// Kundali groups the sidereal chart placements.
type Kundali struct {
	Planets    []KundaliPlanet `json:"planets"`
	BhavaCusps []BhavaCusp     `json:"bhavaCusps"`
}

// KPTables groups the KP lordship tables.
type KPTables struct {
	Ayanamsa   float64    `json:"ayanamsa"`
	GrahaTable []GrahaRow `json:"grahaTable"`
	BhavaTable []BhavaRow `json:"bhavaTable"`
}

// ChartResponse is the full chart document.
type ChartResponse struct {
	Meta          Meta          `json:"meta"`
	Kundali       Kundali       `json:"kundali"`
	KP            KPTables      `json:"kp"`
	RulingPlanets RulingPlanets `json:"rulingPlanets"`
}
