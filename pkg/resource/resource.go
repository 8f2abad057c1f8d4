// Package resource turns models into the flat records an API returns.
//
// A Record keeps its fields in the order they were added, so the JSON object
// a client sees lists columns the way the model declares them:
//
//	func (StoreResource) ToRecord(s models.Store) resource.Record {
//	    return resource.New().
//	        Set("store_id", s.StoreID).
//	        Set("store_name", s.StoreName).
//	        Set("location", s.Location)
//	}
package resource

import (
	"bytes"
	"encoding/json"
	"time"
)

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered, flat field map.
type Record []Field

// Transformer converts one model value into its Record.
type Transformer[T any] interface {
	ToRecord(v T) Record
}

func New() Record {
	return make(Record, 0, 8)
}

// Set appends a field and returns the record for chaining.
func (r Record) Set(key string, value any) Record {
	return append(r, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Map returns an unordered copy, for consumers that resolve fields by name.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r))
	for _, f := range r {
		m[f.Key] = f.Value
	}
	return m
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// One transforms a single value.
func One[T any](t Transformer[T], v T) Record {
	return t.ToRecord(v)
}

// Many transforms a slice. The result is never nil, so an empty collection
// renders as [].
func Many[T any](t Transformer[T], items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, v := range items {
		out = append(out, t.ToRecord(v))
	}
	return out
}

// Timestamp renders t in UTC as RFC 3339 with sub-second precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// OptionalTimestamp renders nil as JSON null.
func OptionalTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return Timestamp(*t)
}
