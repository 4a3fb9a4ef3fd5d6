package session

import "github.com/mmcdole/flixhub/internal/domain"

// MaxHistory bounds the back-navigation stack
const MaxHistory = 10

// History is a bounded stack of previously viewed entries. Index 0 is the
// oldest entry and is evicted first when the bound is exceeded.
type History struct {
	entries []domain.MediaKey
	max     int
}

// NewHistory creates an empty history with the given bound
func NewHistory(max int) *History {
	if max < 1 {
		max = MaxHistory
	}
	return &History{max: max}
}

// Push appends an entry, evicting the oldest when full
func (h *History) Push(key domain.MediaKey) {
	h.entries = append(h.entries, key)
	if len(h.entries) > h.max {
		h.entries = append(h.entries[:0:0], h.entries[len(h.entries)-h.max:]...)
	}
}

// Pop removes and returns the newest entry
func (h *History) Pop() (domain.MediaKey, bool) {
	if len(h.entries) == 0 {
		return domain.MediaKey{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stack, oldest first
func (h *History) Entries() []domain.MediaKey {
	return append([]domain.MediaKey(nil), h.entries...)
}
