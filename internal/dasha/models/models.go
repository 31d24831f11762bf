// Package models defines the dasha endpoints' request and response shapes.
package models

import (
	"jyotish/internal/dasha"
	"jyotish/internal/kp"
)

// BaseRequest identifies the birth instant the dasha cycle is anchored to.
type BaseRequest struct {
	DatetimeLocal string  `json:"datetimeLocal"`
	TZ            string  `json:"tz"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Ayanamsa      string  `json:"ayanamsa,omitempty"`
}

// LevelRequest materializes one level inside an already-known window.
// Start/End are RFC3339 UTC; Lord is the parent period's lord.
type LevelRequest struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Lord  kp.Lord `json:"lord"`
}

// TreeRequest builds an eager subtree for the running mahadasha.
type TreeRequest struct {
	BaseRequest
	Depth int `json:"depth,omitempty"` // 1..5, default 5
}

// Meta describes the resolved dasha entry point.
type Meta struct {
	UTCISO           string  `json:"utc_iso"`
	JDUT             float64 `json:"jd_ut"`
	Ayanamsa         string  `json:"ayanamsa"`
	AyanamsaValueDeg float64 `json:"ayanamsaValueDeg"`
	MoonSidereal     float64 `json:"moonSidereal"`
	MahaLord         kp.Lord `json:"mahaLord"`
	BalanceYears     float64 `json:"balanceYears"`
}

// MahaResponse is the 120-year mahadasha timeline.
type MahaResponse struct {
	Meta Meta         `json:"meta"`
	Maha []dasha.Node `json:"maha"`
}

// LevelResponse carries one materialized level.
type LevelResponse struct {
	Level dasha.Level  `json:"level"`
	Nodes []dasha.Node `json:"nodes"`
}

// TreeResponse carries the eager subtree of the running mahadasha.
type TreeResponse struct {
	Meta Meta       `json:"meta"`
	Tree dasha.Node `json:"tree"`
}
