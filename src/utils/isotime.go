package utils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted ISO-8601 shapes, widest first. Fractional seconds are optional in
// every layout; the first two carry a numeric UTC offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO8601 parses an ISO-8601 datetime string. A trailing "Z" is treated
// as the "+00:00" offset; strings without an offset are taken as-is (UTC).
func ParseISO8601(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 datetime: %q", value)
}
