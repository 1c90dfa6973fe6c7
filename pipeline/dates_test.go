package pipeline

import (
	"testing"
	"time"
)

func TestNormalizeDateLayouts(t *testing.T) {
	want := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input interface{}
	}{
		{"time.Time", time.Date(2024, 2, 15, 13, 45, 12, 0, time.UTC)},
		{"RFC3339", "2024-02-15T13:45:12Z"},
		{"date only", "2024-02-15"},
		{"datetime no zone", "2024-02-15T13:45:12"},
		{"epoch seconds", int64(1707998712)},
		{"epoch seconds float", float64(1707998712)},
		{"epoch millis", int64(1707998712000)},
		{"firestore map", map[string]interface{}{"seconds": float64(1707998712)}},
		{"firestore underscore map", map[string]interface{}{"_seconds": float64(1707998712)}},
	}

	for _, tc := range cases {
		got, ok := NormalizeDate(tc.input)
		if !ok {
			t.Errorf("%s: expected a valid date, got none", tc.name)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%s: expected %v, got %v", tc.name, want, got)
		}
	}
}

func TestNormalizeDateUnparseable(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
	}{
		{"nil", nil},
		{"empty string", ""},
		{"garbage string", "not-a-date"},
		{"zero time", time.Time{}},
		{"negative epoch", int64(-5)},
		{"zero epoch", 0},
		{"map without seconds", map[string]interface{}{"nanos": float64(12)}},
		{"unexpected type", []string{"2024-02-15"}},
	}

	for _, tc := range cases {
		if got, ok := NormalizeDate(tc.input); ok {
			t.Errorf("%s: expected no date, got %v", tc.name, got)
		}
	}
}

func TestNormalizeDateTruncatesToDay(t *testing.T) {
	got, ok := NormalizeDate("2024-06-30T23:59:59Z")
	if !ok {
		t.Fatal("expected a valid date")
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestNormalizeDateNeverPanics(t *testing.T) {
	// Every input degrades to the none result, it never throws.
	inputs := []interface{}{
		struct{ X int }{1},
		map[string]interface{}{"seconds": "soon"},
		make(chan int),
	}
	for _, v := range inputs {
		NormalizeDate(v)
	}
}
