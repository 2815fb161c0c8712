package charptr

// Cursor is the contract an encoding backend has to fulfil. Implementations
// are small value types (a handle into caller-owned storage); read-only
// methods are usually defined on the value, mutating methods on the pointer.
//
// Cursor operations never check bounds. The storage a cursor points into
// must be terminated by a zero code unit reachable from the current
// position.
type Cursor interface {
	Get() rune                   // code-point at the current position
	GetAndAdvance() rune         // code-point at the current position, then advance by one code-point
	Advance()                    // move to the next code-point
	IsEmpty() bool               // does the cursor point at the terminator?
	At(n int) rune               // n-th code-point from the current position, without moving
	Length() int                 // number of code-points up to the terminator
	Write(r rune)                // store r at the current position and advance; does not terminate
	WriteNull()                  // store a terminator at the current position without moving
	BytesRequiredFor(r rune) int // bytes needed to encode r in this backend's encoding
}

// Pointer is a type constraint for the generic text algorithms. It is
// satisfied by *T for every backend type T whose pointer implements Cursor.
//
// Generic functions take cursors of type T by value and operate on a private
// copy through Pointer, so callers' cursors are never moved unless they are
// passed by pointer explicitly (destinations of copy operations).
type Pointer[T any] interface {
	*T
	Cursor
}
