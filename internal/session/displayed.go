package session

// DisplayedSet tracks media IDs already rendered in the current view
type DisplayedSet map[int]struct{}

// Has reports whether id was rendered
func (s DisplayedSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add marks id as rendered
func (s DisplayedSet) Add(id int) {
	s[id] = struct{}{}
}

// Clear forgets every id
func (s DisplayedSet) Clear() {
	clear(s)
}
