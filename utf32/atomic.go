package utf32

import "sync/atomic"

// AtomicPointer is a cell holding a CharPointer, for cursors stored in memory
// shared between goroutines. The handle is replaced in a single atomic
// exchange; readers observe either the old or the new handle, never a mix
// of both.
//
// Only the handle is exchanged atomically. Access to the text it points to
// still has to be synchronized by the caller.
//
// The zero value holds the zero CharPointer. An AtomicPointer must not be
// copied after first use.
type AtomicPointer struct {
	p atomic.Pointer[CharPointer]
}

// NewAtomicPointer creates a cell holding p.
func NewAtomicPointer(p CharPointer) *AtomicPointer {
	a := &AtomicPointer{}
	a.Store(p)
	return a
}

// Load returns the cursor currently held.
func (a *AtomicPointer) Load() CharPointer {
	if p := a.p.Load(); p != nil {
		return *p
	}
	return CharPointer{}
}

// Store replaces the cursor held.
func (a *AtomicPointer) Store(p CharPointer) {
	a.p.Store(&p)
}

// Swap replaces the cursor held by p and returns the previous one.
func (a *AtomicPointer) Swap(p CharPointer) CharPointer {
	if old := a.p.Swap(&p); old != nil {
		return *old
	}
	return CharPointer{}
}
