package services

import "slices"

// Selection is an ordered set of candidate ids.
type Selection struct {
	ids []string
}

// Toggle adds id when absent and removes it otherwise. It reports whether id is now selected.
func (s *Selection) Toggle(id string) bool {
	if index := slices.Index(s.ids, id); index >= 0 {
		s.ids = slices.Delete(s.ids, index, index+1)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = nil
}

// Retain drops ids that are not in available.
func (s *Selection) Retain(available []string) {
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool {
		return !slices.Contains(available, id)
	})
}
