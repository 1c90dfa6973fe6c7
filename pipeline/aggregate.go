package pipeline

import "strings"

// Stat is one named statistic computed over the filtered record set.
type Stat[T any] struct {
	Name    string
	Compute func(records []T) float64
}

// Aggregator bundles the statistics a page shows above its table. Compute is
// re-run in full whenever the filtered set changes; record sets here are
// administrative scale, so no incremental bookkeeping is worth having.
type Aggregator[T any] struct {
	Stats []Stat[T]
}

// Compute evaluates every statistic over the filtered set. An empty input
// produces zeros, never NaN.
func (a Aggregator[T]) Compute(records []T) map[string]float64 {
	out := make(map[string]float64, len(a.Stats))
	for _, s := range a.Stats {
		out[s.Name] = s.Compute(records)
	}
	return out
}

// Count is the total record count.
func Count[T any](name string) Stat[T] {
	return Stat[T]{Name: name, Compute: func(records []T) float64 {
		return float64(len(records))
	}}
}

// Sum totals a numeric field. The accessor is expected to coerce missing or
// non-numeric source values to 0, so the sum is always defined.
func Sum[T any](name string, value func(T) float64) Stat[T] {
	return Stat[T]{Name: name, Compute: func(records []T) float64 {
		var total float64
		for _, rec := range records {
			total += value(rec)
		}
		return total
	}}
}

// CountDistinct counts distinct non-empty values of a field,
// case-insensitively.
func CountDistinct[T any](name string, value func(T) string) Stat[T] {
	return Stat[T]{Name: name, Compute: func(records []T) float64 {
		seen := make(map[string]struct{})
		for _, rec := range records {
			v := strings.ToLower(strings.TrimSpace(value(rec)))
			if v == "" {
				continue
			}
			seen[v] = struct{}{}
		}
		return float64(len(seen))
	}}
}

// CountWhere counts records matching a sub-predicate.
func CountWhere[T any](name string, pred func(T) bool) Stat[T] {
	return Stat[T]{Name: name, Compute: func(records []T) float64 {
		var n float64
		for _, rec := range records {
			if pred(rec) {
				n++
			}
		}
		return n
	}}
}

// Ratio divides one already-defined statistic by another, as a percentage.
// A zero denominator yields 0.
func Ratio[T any](name string, num, den Stat[T]) Stat[T] {
	return Stat[T]{Name: name, Compute: func(records []T) float64 {
		return Percentage(num.Compute(records), den.Compute(records))
	}}
}

// Percentage is achieved/target*100 with the zero-denominator guard used
// everywhere a ratio is displayed.
func Percentage(achieved, target float64) float64 {
	if target == 0 {
		return 0
	}
	return achieved / target * 100
}
