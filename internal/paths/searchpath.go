package paths

import "sync"

// SearchPath is an ordered list of directories consulted to resolve
// importable code. It replaces the original process-global search path with
// a value the caller owns and threads through explicitly.
type SearchPath struct {
	mu      sync.RWMutex
	entries []string
}

func NewSearchPath(entries ...string) *SearchPath {
	return &SearchPath{entries: append([]string(nil), entries...)}
}

// Prepend inserts dir at the front unless it is already present, and
// reports whether the entry was added.
func (p *SearchPath) Prepend(dir string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, e := range p.entries {
		if e == dir {
			return false
		}
	}
	p.entries = append([]string{dir}, p.entries...)
	return true
}

func (p *SearchPath) Contains(dir string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, e := range p.entries {
		if e == dir {
			return true
		}
	}
	return false
}

// Entries returns a copy of the current entries in resolution order.
func (p *SearchPath) Entries() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.entries...)
}
