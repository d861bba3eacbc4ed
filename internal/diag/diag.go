// Package diag collects the non-fatal warnings produced while compiling and
// encoding macro scripts.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Sink is an append-only destination for diagnostics. It is safe for
// concurrent use, so several compilations may share one sink.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	count  int // all lines written through the root
	local  int // lines written through this sink
	parent *Sink
}

// New returns a sink that writes one line per diagnostic to w.
// A nil writer discards output but still counts warnings.
func New(w io.Writer) *Sink {
	if w == nil {
		w = io.Discard
	}
	return &Sink{w: w}
}

// Discard returns a sink that drops everything.
func Discard() *Sink {
	return New(nil)
}

// WithPrefix returns a sink that prepends prefix to every line and shares the
// underlying writer and counter with s.
func (s *Sink) WithPrefix(prefix string) *Sink {
	return &Sink{prefix: s.prefix + prefix, parent: s.root()}
}

// Warnf records a single diagnostic line.
func (s *Sink) Warnf(format string, args ...any) {
	if s == nil {
		return
	}
	root := s.root()
	root.mu.Lock()
	defer root.mu.Unlock()

	root.count++
	s.local++
	fmt.Fprintf(root.w, "%s%s\n", s.prefix, fmt.Sprintf(format, args...))
}

// Count returns the number of diagnostics recorded so far by s and every sink
// derived from it.
func (s *Sink) Count() int {
	if s == nil {
		return 0
	}
	root := s.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	return root.count
}

// Local returns the number of diagnostics recorded through s itself, not
// counting those of the parent or sibling sinks.
func (s *Sink) Local() int {
	if s == nil {
		return 0
	}
	root := s.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	return s.local
}

func (s *Sink) root() *Sink {
	if s.parent != nil {
		return s.parent
	}
	return s
}
