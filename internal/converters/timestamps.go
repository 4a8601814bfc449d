// Package converters provides type-safe conversion between the persisted
// board document and domain models.
//
// All conversions handle:
// - ISO-8601 timestamp strings (revived on load, re-emitted on save)
// - Optional fields that may be absent or null in the document
// - Type checks on every field: a wrong type is an error, never a silent zero
//
// Example usage:
//
//	// Encoding a board for storage
//	doc := converters.BoardToDocument(board)
//
//	// Decoding a generic JSON value after revival
//	board, err := converters.BoardFromValue(converters.Revive(raw))
package converters

import (
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form timestamps are written in
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// timestampPattern matches strings that are revived into timestamps on load
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?Z?$`)

// RevivedTime is a string value of the document that looked like a timestamp.
// Raw keeps the original text so string fields holding a date-like value
// survive revival unchanged.
type RevivedTime struct {
	Raw  string
	Time time.Time
}

// FormatTimestamp renders t in the persisted ISO-8601 form (UTC, milliseconds)
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// IsTimestamp reports whether s is revived into a timestamp on load
func IsTimestamp(s string) bool {
	return timestampPattern.MatchString(s)
}

// ParseTimestamp parses a timestamp string in the persisted form.
// The trailing Z and the milliseconds are optional; values without a Z are
// read as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	if !IsTimestamp(s) {
		return time.Time{}, false
	}

	value := strings.TrimSuffix(s, "Z")
	layout := "2006-01-02T15:04:05"
	if strings.Contains(value, ".") {
		layout = "2006-01-02T15:04:05.000"
	}

	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Revive walks a generic JSON value (as produced by encoding/json into any)
// and replaces every string matching the timestamp pattern with a RevivedTime.
func Revive(v any) any {
	switch val := v.(type) {
	case string:
		if t, ok := ParseTimestamp(val); ok {
			return RevivedTime{Raw: val, Time: t}
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Revive(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Revive(item)
		}
		return out
	default:
		return v
	}
}
