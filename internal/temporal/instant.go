// Package temporal normalizes heterogeneous timestamp representations into
// a single comparable UTC instant type.
package temporal

import (
	"strings"
	"time"
)

// Instant is a timezone-aware point in time in UTC, or the explicit Unknown
// value when no valid timestamp was derivable. The zero value is Unknown.
type Instant struct {
	t     time.Time
	known bool
}

// Unknown denotes "no valid timestamp was derivable". Callers must exclude
// Unknown from max/comparison logic rather than treat it as an error.
var Unknown = Instant{}

// layouts accepted by Normalize, tried in order. Layouts without an explicit
// offset are interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// FromTime wraps an already-typed timestamp. The zero time maps to Unknown.
func FromTime(t time.Time) Instant {
	if t.IsZero() {
		return Unknown
	}
	return Instant{t: t.UTC(), known: true}
}

// Normalize parses a raw timestamp into a UTC instant. Null-ish, empty, and
// unparseable input all yield Unknown; Normalize never fails.
func Normalize(raw string) Instant {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return Unknown
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Instant{t: t.UTC(), known: true}
		}
	}
	return Unknown
}

// Known reports whether the instant holds a valid timestamp.
func (i Instant) Known() bool { return i.known }

// Time returns the underlying UTC time. Zero when Unknown.
func (i Instant) Time() time.Time { return i.t }

// Before reports whether i is strictly earlier than o. False when either
// side is Unknown.
func (i Instant) Before(o Instant) bool {
	return i.known && o.known && i.t.Before(o.t)
}

// After reports whether i is strictly later than o. False when either side
// is Unknown.
func (i Instant) After(o Instant) bool {
	return i.known && o.known && i.t.After(o.t)
}

// Equal reports whether both instants are known and denote the same moment.
func (i Instant) Equal(o Instant) bool {
	return i.known && o.known && i.t.Equal(o.t)
}

// FormatZ renders the instant as ISO-8601 UTC with a Z suffix, or the empty
// string when Unknown.
func (i Instant) FormatZ() string {
	if !i.known {
		return ""
	}
	return i.t.Format(time.RFC3339)
}

// Max returns the later of a and b, ignoring Unknown operands. Unknown when
// both are Unknown.
func Max(a, b Instant) Instant {
	if !a.known {
		return b
	}
	if !b.known {
		return a
	}
	if b.t.After(a.t) {
		return b
	}
	return a
}
