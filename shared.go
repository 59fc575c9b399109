package dibox

// Shared is the handle returned by resolution, regardless of lifetime.
// Copying a Shared is O(1) and yields a handle to the same underlying
// instance; the instance itself lives as long as any handle references
// it. Two handles refer to the same instance iff Same reports true,
// which compares identity and ignores T's own equality semantics.
type Shared[T any] struct {
	ref *T
}

// NewShared wraps an already-constructed value in a handle.
func NewShared[T any](value T) Shared[T] {
	return Shared[T]{ref: &value}
}

// Value returns the wrapped instance. It panics on the zero Shared.
func (s Shared[T]) Value() T {
	return *s.ref
}

// Ref returns a pointer to the wrapped instance, or nil for the zero
// Shared.
func (s Shared[T]) Ref() *T {
	return s.ref
}

// Same reports whether both handles refer to the same instance.
func (s Shared[T]) Same(other Shared[T]) bool {
	return s.ref == other.ref
}

// IsZero reports whether the handle references no instance. Resolution
// returns a zero Shared alongside a non-nil error.
func (s Shared[T]) IsZero() bool {
	return s.ref == nil
}
