package store

import (
	"strconv"
	"time"

	"farmhub/backend/pipeline"
)

// Doc is one raw document as fetched from the record store, before it is
// resolved into a canonical typed record. Several frontend generations wrote
// these collections with drifting field names, so every accessor takes a
// fallback chain of recognized keys and the resolution happens exactly once,
// here at the boundary.
type Doc struct {
	ID   string
	Data map[string]interface{}
}

// Str returns the first non-empty string found under the given keys.
func (d Doc) Str(keys ...string) string {
	for _, key := range keys {
		if v, ok := d.Data[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// Float returns the first numeric value found under the given keys, coercing
// strings that parse as numbers. Missing or non-numeric values are 0.
func (d Doc) Float(keys ...string) float64 {
	for _, key := range keys {
		v, ok := d.Data[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// Bool returns the first boolean found under the given keys, accepting the
// "true"/"false" strings older documents used.
func (d Doc) Bool(keys ...string) bool {
	for _, key := range keys {
		v, ok := d.Data[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if b == "true" {
				return true
			}
			if b == "false" {
				return false
			}
		}
	}
	return false
}

// Date normalizes the first date-like value found under the given keys to a
// calendar day. Zero means none of the keys held a parseable date.
func (d Doc) Date(keys ...string) time.Time {
	for _, key := range keys {
		if v, ok := d.Data[key]; ok {
			if day, ok := pipeline.NormalizeDate(v); ok {
				return day
			}
		}
	}
	return time.Time{}
}
