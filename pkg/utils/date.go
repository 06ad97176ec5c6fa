package utils

import (
	"time"
)

// updatedAtLayouts covers the timestamp shapes dolarapi.com has been seen
// returning: RFC3339 with milliseconds, plain RFC3339, and a naive local
// timestamp without zone.
var updatedAtLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseUpdatedAt parses a provider timestamp, trying each known layout.
func ParseUpdatedAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range updatedAtLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatUpdated renders a timestamp at minute precision for report strings.
func FormatUpdated(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
