package tour

import "time"

// Iso8601UTC formats a timestamp for GPX <time> elements.
func Iso8601UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseDate parses the tour start date as reported by Komoot. Newer
// pages use RFC3339 offsets ("+02:00"), older ones the compact form
// without a colon ("+0200").
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
