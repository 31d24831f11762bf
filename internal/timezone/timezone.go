// Package timezone converts the API's local datetime strings to UTC instants.
package timezone

import (
	"time"

	apperrors "jyotish/pkg/domain-errors"
)

// LocalLayout is the wire format for local datetimes, e.g. "2025-12-28T08:30:00".
const LocalLayout = "2006-01-02T15:04:05"

// fallbackZone is used when the requested IANA zone cannot be loaded. +05:30
// matches the service's primary audience and the behavior callers rely on.
var fallbackZone = time.FixedZone("IST", 5*3600+30*60)

// Load resolves an IANA zone name, falling back to the fixed +05:30 offset
// when zone data is unavailable.
func Load(name string) *time.Location {
	if name == "" {
		return fallbackZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallbackZone
	}
	return loc
}

// ToUTC parses a naive local datetime in the given IANA zone and returns the
// UTC instant.
func ToUTC(localDatetime, zoneName string) (time.Time, error) {
	loc := Load(zoneName)
	t, err := time.ParseInLocation(LocalLayout, localDatetime, loc)
	if err != nil {
		// Accept a trailing seconds-less form as well.
		t, err = time.ParseInLocation("2006-01-02T15:04", localDatetime, loc)
		if err != nil {
			return time.Time{}, apperrors.Wrap(apperrors.CodeBadRequest, "invalid local datetime", err)
		}
	}
	return t.UTC(), nil
}
