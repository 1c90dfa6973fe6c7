package pipeline

import (
	"net/url"
	"strings"
	"time"
)

// NoConstraint is the selector value that means "don't filter on this key".
// An empty string is treated the same way.
const NoConstraint = "all"

// FilterSpec is the active set of user-chosen constraints applied to a record
// set. A zero FilterSpec matches every record.
type FilterSpec struct {
	Search     string            `json:"search,omitempty"`
	StartDate  string            `json:"startDate,omitempty"` // 2006-01-02
	EndDate    string            `json:"endDate,omitempty"`   // 2006-01-02
	Categories map[string]string `json:"categories,omitempty"`

	start time.Time
	end   time.Time
}

// Accessors tells the pipeline how to read one record type. SearchFields are
// the fields subject to text search, Date yields the record's normalized
// calendar day (zero means the record has no parseable date), and Category
// maps each categorical filter key to its field.
type Accessors[T any] struct {
	SearchFields []func(T) string
	Date         func(T) time.Time
	Category     map[string]func(T) string
}

// SpecFromQuery builds a FilterSpec from list-endpoint query parameters.
// Only the category keys the caller names are recognized; everything else in
// the query string is ignored.
func SpecFromQuery(q url.Values, categoryKeys ...string) FilterSpec {
	spec := FilterSpec{
		Search:    q.Get("search"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	for _, key := range categoryKeys {
		if v := q.Get(key); !isNoConstraint(v) {
			if spec.Categories == nil {
				spec.Categories = make(map[string]string)
			}
			spec.Categories[key] = v
		}
	}
	return spec
}

// HasDateBound reports whether either end of the date range is set.
func (s FilterSpec) HasDateBound() bool {
	return s.StartDate != "" || s.EndDate != ""
}

// bounds parses the date strings once per Filter call. An unparseable bound
// degrades to unset rather than failing the whole filter.
func (s *FilterSpec) bounds() {
	if s.StartDate != "" {
		s.start, _ = NormalizeDate(s.StartDate)
	}
	if s.EndDate != "" {
		s.end, _ = NormalizeDate(s.EndDate)
	}
}

// Filter returns the records matching spec, preserving input order. It is a
// pure function: the input slice is never mutated and repeated calls with the
// same inputs give the same output.
func Filter[T any](records []T, spec FilterSpec, acc Accessors[T]) []T {
	spec.bounds()
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if match(rec, spec, acc) {
			out = append(out, rec)
		}
	}
	return out
}

// Match reports whether a single record satisfies every active constraint in
// spec (AND semantics).
func Match[T any](rec T, spec FilterSpec, acc Accessors[T]) bool {
	spec.bounds()
	return match(rec, spec, acc)
}

func match[T any](rec T, spec FilterSpec, acc Accessors[T]) bool {
	if spec.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(spec.Search))
		if needle != "" && !matchesSearch(rec, needle, acc.SearchFields) {
			return false
		}
	}

	if spec.HasDateBound() {
		if acc.Date == nil {
			return false
		}
		day := acc.Date(rec)
		// A record without a usable date is excluded whenever either
		// bound is set.
		if day.IsZero() {
			return false
		}
		if !spec.start.IsZero() && day.Before(spec.start) {
			return false
		}
		if !spec.end.IsZero() && day.After(spec.end) {
			return false
		}
	}

	for key, want := range spec.Categories {
		if isNoConstraint(want) {
			continue
		}
		get, ok := acc.Category[key]
		if !ok {
			// Unknown key on this record type: nothing can match it.
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(get(rec)), strings.TrimSpace(want)) {
			return false
		}
	}

	return true
}

func matchesSearch[T any](rec T, needle string, fields []func(T) string) bool {
	for _, get := range fields {
		if strings.Contains(strings.ToLower(get(rec)), needle) {
			return true
		}
	}
	return false
}

func isNoConstraint(v string) bool {
	return v == "" || strings.EqualFold(v, NoConstraint)
}
