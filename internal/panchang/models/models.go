// Package models defines the panchangam endpoint's request/response shapes.
package models

// Request identifies the local calendar day and observer.
type Request struct {
	DatetimeLocal string  `json:"datetimeLocal"`
	TZ            string  `json:"tz"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Ayanamsa      string  `json:"ayanamsa,omitempty"`
}

// Item is one day element with its end rendered in local time.
type Item struct {
	Name     string `json:"name"`
	Extra    string `json:"extra,omitempty"`
	EndLocal string `json:"end_local"`
	EndHMS   string `json:"end_hms"`
}

// Response is the panchangam for one sunrise-to-sunrise window.
type Response struct {
	SunriseLocal     string `json:"sunrise_local"`
	NextSunriseLocal string `json:"next_sunrise_local"`
	Vaara            string `json:"vaara"`
	Tithi            Item   `json:"tithi"`
	Nakshatra        Item   `json:"nakshatra"`
	Yoga             Item   `json:"yoga"`
	Karana           Item   `json:"karana"`
}
