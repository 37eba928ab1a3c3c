package core

import "github.com/jask/orderdeck/internal/database/repository"

// SelectionModel tracks which order ids are selected and whether the current
// selection came from a bulk select-all rather than individual toggles. All
// mutation happens on the update loop; no locking needed.
type SelectionModel struct {
	ids []string
	all bool
}

// Toggle flips membership of id. Any id is accepted, including ids no longer
// present in the visible order list; stale ids are harmless. A manual toggle
// always demotes the selection to individual mode, even if the resulting set
// happens to cover every order.
func (s *SelectionModel) Toggle(id string) {
	s.all = false
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// SelectAll replaces the selection with every order in orders, or clears it
// entirely when allSelected reports the bulk toggle is being switched off.
// This is a full replace, never a union.
func (s *SelectionModel) SelectAll(orders []repository.Order, allSelected bool) {
	if allSelected {
		s.ids = nil
		s.all = false
		return
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	s.ids = ids
	s.all = true
}

// Clear drops the selection and the select-all mode.
func (s *SelectionModel) Clear() {
	s.ids = nil
	s.all = false
}

// Selected reports whether id is in the selection.
func (s *SelectionModel) Selected(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected ids in insertion order.
func (s *SelectionModel) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// AllSelected reports whether the selection was produced by select-all.
func (s *SelectionModel) AllSelected() bool { return s.all }

// Count returns the number of selected ids.
func (s *SelectionModel) Count() int { return len(s.ids) }
