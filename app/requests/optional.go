// Package requests declares the JSON bodies accepted by the API.
//
// Create bodies use pointer fields so a missing key can be told apart from a
// zero value. Update bodies use Optional so a key can be absent, null, or set.
package requests

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Optional is a field of a partial update.
type Optional[T any] struct {
	Set   bool // key present in the body
	Null  bool // key present with a JSON null
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Timestamp accepts RFC 3339 and a few common date layouts. Values without a
// zone are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// ParseTimestamp parses s with the first matching layout.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("cannot parse %q as a timestamp", s)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
