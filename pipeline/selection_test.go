package pipeline

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	if !s.Selected("a") || s.Count() != 1 {
		t.Error("expected a selected")
	}
	s.Toggle("a")
	if s.Selected("a") || s.Count() != 0 {
		t.Error("expected a deselected after second toggle")
	}
}

func TestSelectionTogglePageScopedToVisiblePage(t *testing.T) {
	// 17 records at page size 15: page 2 shows records 16-17 only.
	all := make([]string, 17)
	for i := range all {
		all[i] = string(rune('a' + i))
	}
	pageTwo := Paginate(all, 2, 15)
	if len(pageTwo) != 2 {
		t.Fatalf("expected 2 records on page 2, got %d", len(pageTwo))
	}

	s := NewSelection()
	s.TogglePage(pageTwo)

	if s.Count() != 2 {
		t.Errorf("select-all on page 2 selected %d ids, want only the 2 visible", s.Count())
	}
	if !reflect.DeepEqual(s.IDs(), pageTwo) {
		t.Errorf("expected exactly the visible ids, got %v", s.IDs())
	}

	// Toggling again deselects them all.
	s.TogglePage(pageTwo)
	if s.Count() != 0 {
		t.Errorf("expected toggle back to none, got %d", s.Count())
	}
}

func TestSelectionTogglePagePartial(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")

	// One of the page ids already selected: toggle selects the rest.
	s.TogglePage([]string{"a", "b", "c"})
	if s.Count() != 3 {
		t.Errorf("expected all page ids selected, got %d", s.Count())
	}
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("gone")

	s.Prune([]string{"a", "b", "c"})

	if s.Selected("gone") {
		t.Error("expected dangling id pruned after refresh")
	}
	if !s.Selected("a") || !s.Selected("b") {
		t.Error("expected surviving ids kept")
	}
}

func TestSelectionClear(t *testing.T) {
	s := NewSelection()
	s.Toggle("a")
	s.Clear()
	if s.Count() != 0 {
		t.Error("expected empty selection after clear")
	}
}

func TestPruneIDs(t *testing.T) {
	kept, dropped := PruneIDs([]string{"a", "x", "b"}, []string{"a", "b", "c"})
	if !reflect.DeepEqual(kept, []string{"a", "b"}) {
		t.Errorf("unexpected kept: %v", kept)
	}
	if !reflect.DeepEqual(dropped, []string{"x"}) {
		t.Errorf("unexpected dropped: %v", dropped)
	}
}
