package domain

// Server selects one of the two embed providers
type Server int

const (
	Server1 Server = 1
	Server2 Server = 2
)

// Other returns the alternate server
func (s Server) Other() Server {
	if s == Server2 {
		return Server1
	}
	return Server2
}

// PlayTarget names what a play action will open. Season and Episode are
// zero for movies.
type PlayTarget struct {
	Media   MediaKey
	Server  Server
	Season  int
	Episode int
}

// WithServer returns a copy of the target pointed at server s
func (p PlayTarget) WithServer(s Server) PlayTarget {
	p.Server = s
	return p
}
