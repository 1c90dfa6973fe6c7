package pipeline

import (
	"log"
	"time"
)

// dateLayouts are the string formats we accept from the store, most specific
// first. Older documents were written by several frontend versions so the set
// is wider than just RFC 3339.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// NormalizeDate converts a value of unknown representation into a calendar
// day in UTC. It accepts time.Time, date strings in the layouts above,
// numeric epochs (seconds or milliseconds), and Firestore-style timestamp
// maps carrying a "seconds" or "_seconds" field. It never fails: anything it
// cannot make sense of yields ok=false, which the date-range filter treats as
// "no date on this record".
func NormalizeDate(v interface{}) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return truncateDay(d), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return truncateDay(*d), true
	case string:
		if d == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return truncateDay(t), true
			}
		}
		log.Printf("Unparseable date string %q, treating record as undated", d)
		return time.Time{}, false
	case float64:
		return epochToDay(int64(d))
	case int64:
		return epochToDay(d)
	case int:
		return epochToDay(int64(d))
	case map[string]interface{}:
		// Firestore timestamps serialized through JSON arrive as
		// {seconds: N, nanos: N} or {_seconds: N, _nanoseconds: N}.
		for _, key := range []string{"seconds", "_seconds"} {
			if sec, ok := d[key]; ok {
				return NormalizeDate(sec)
			}
		}
		return time.Time{}, false
	default:
		log.Printf("Unrecognized date value of type %T, treating record as undated", v)
		return time.Time{}, false
	}
}

// epochToDay interprets n as a Unix epoch, deciding between seconds and
// milliseconds by magnitude. Anything non-positive is not a usable date.
func epochToDay(n int64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	// Millisecond epochs for plausible dates are ~1e12; second epochs ~1e9.
	if n > 1e11 {
		return truncateDay(time.UnixMilli(n)), true
	}
	return truncateDay(time.Unix(n, 0)), true
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
