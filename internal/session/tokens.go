package session

// Token identifies one load of a view. A response carrying a token that
// is no longer current for its view is stale and must be dropped.
type Token struct {
	View string
	Gen  uint64
}

// Generations hands out per-view generation counters
type Generations struct {
	current map[string]uint64
}

// NewGenerations creates an empty counter set
func NewGenerations() *Generations {
	return &Generations{current: make(map[string]uint64)}
}

// Next advances the view's generation and returns a token for it.
// Any token issued earlier for the same view becomes stale.
func (g *Generations) Next(view string) Token {
	g.current[view]++
	return Token{View: view, Gen: g.current[view]}
}

// Current reports whether tok is the latest token of its view
func (g *Generations) Current(tok Token) bool {
	return g.current[tok.View] == tok.Gen
}

// Latest returns the current token of view without advancing it
func (g *Generations) Latest(view string) Token {
	return Token{View: view, Gen: g.current[view]}
}

// Invalidate makes every outstanding token of view stale
func (g *Generations) Invalidate(view string) {
	g.current[view]++
}

// InFlight marks sections with a load in progress
type InFlight map[string]bool

// Begin marks section busy. It returns false when a load is already
// running for that section.
func (f InFlight) Begin(section string) bool {
	if f[section] {
		return false
	}
	f[section] = true
	return true
}

// Done clears the section's marker
func (f InFlight) Done(section string) {
	delete(f, section)
}

// Busy reports whether section has a load in progress
func (f InFlight) Busy(section string) bool {
	return f[section]
}

// Any reports whether any section is loading
func (f InFlight) Any() bool {
	return len(f) > 0
}
