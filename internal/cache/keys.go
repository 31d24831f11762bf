package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"jyotish/internal/timezone"
)

// RequestKey derives a cache key from the request parameters that determine
// the response. The local datetime is bucketed to the minute so repeated
// "now" taps within a minute share one entry.
func RequestKey(scope, localDatetime, tz string, lat, lon float64, ayanamsa string) string {
	raw := fmt.Sprintf("%s|%s|%.5f|%.5f|%s", bucketMinute(localDatetime, tz), tz, lat, lon, ayanamsa)
	sum := sha1.Sum([]byte(raw))
	return scope + ":" + hex.EncodeToString(sum[:])
}

func bucketMinute(localDatetime, tz string) string {
	t, err := time.ParseInLocation(timezone.LocalLayout, localDatetime, timezone.Load(tz))
	if err != nil {
		return localDatetime
	}
	return t.Truncate(time.Minute).Format(timezone.LocalLayout)
}
