package graph

import (
	"errors"
	"sync/atomic"
)

// ErrExclusiveAccess is the panic value raised when a mutating call is made
// against a graph while another mutation of the same graph is still in
// progress. This indicates a broken single-writer discipline (for example a
// command whose Apply re-enters the same graph) and is a fatal contract
// violation, not a recoverable error. Graph state must be treated as
// untrusted after the panic.
var ErrExclusiveAccess = errors.New("graph: exclusive access violation")

// writeGuard is a runtime-checked single-writer guard. Unlike a mutex it
// does not block: a second acquire while one is held is a programming error
// and panics immediately instead of deadlocking.
type writeGuard struct {
	held atomic.Bool
}

func (w *writeGuard) acquire() {
	if !w.held.CompareAndSwap(false, true) {
		panic(ErrExclusiveAccess)
	}
}

func (w *writeGuard) release() {
	w.held.Store(false)
}
