package pipeline

import "sort"

// Selection tracks the record ids chosen for a bulk action. Select-all is
// deliberately scoped to the ids visible on the current page, not the whole
// filtered set, so a bulk delete never touches rows the user hasn't seen.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips the selected state of one id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// TogglePage implements select-all for the visible page: if every id on the
// page is already selected it deselects them all, otherwise it selects them
// all. Ids outside the page are left alone.
func (s *Selection) TogglePage(pageIDs []string) {
	all := len(pageIDs) > 0
	for _, id := range pageIDs {
		if _, ok := s.ids[id]; !ok {
			all = false
			break
		}
	}
	for _, id := range pageIDs {
		if all {
			delete(s.ids, id)
		} else {
			s.ids[id] = struct{}{}
		}
	}
}

// Selected reports whether an id is currently selected.
func (s *Selection) Selected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Prune drops any selected id that is not in the live set, so a refresh never
// leaves a bulk action pointed at a record that no longer exists.
func (s *Selection) Prune(liveIDs []string) {
	live := make(map[string]struct{}, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := live[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// IDs returns the selected ids in a stable order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PruneIDs filters a requested id list down to the ids that exist in the live
// set, returning kept and dropped separately. Batch handlers use this to
// reject dangling ids before issuing the store call.
func PruneIDs(requested, liveIDs []string) (kept, dropped []string) {
	live := make(map[string]struct{}, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = struct{}{}
	}
	for _, id := range requested {
		if _, ok := live[id]; ok {
			kept = append(kept, id)
		} else {
			dropped = append(dropped, id)
		}
	}
	return kept, dropped
}
