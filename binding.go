package dibox

import "sync/atomic"

// Lifetime defines how long a resolved instance is shared.
type Lifetime string

// Available lifetimes
const (
	// Transient creates a new instance for each resolution
	Transient Lifetime = "transient"
	// Singleton shares a single instance for the container's life
	Singleton Lifetime = "singleton"
)

// Builder constructs a value of type T. The Resolver argument lets a
// builder resolve its own dependencies; nested Resolve calls made
// through it participate in cycle detection for the current resolution.
type Builder[T any] func(r *Resolver) (T, error)

// binding pairs a type-erased builder with its lifetime and, for
// singletons, the lazily populated instance cell. The erased builder
// returns the instance boxed as *T so identity comparisons work across
// the type-erased boundary.
type binding struct {
	key      typeKey
	lifetime Lifetime
	build    func(r *Resolver) (any, error)
	cell     instanceCell
}

// instanceCell is a write-once cell holding a singleton's boxed
// instance. It transitions from empty to populated at most once and is
// never cleared.
type instanceCell struct {
	ptr atomic.Pointer[any]
}

func (c *instanceCell) load() (any, bool) {
	if p := c.ptr.Load(); p != nil {
		return *p, true
	}
	return nil, false
}

// store retains ref unless another writer got there first, and returns
// whichever value the cell permanently holds. Racing first-time
// populations are tolerated: each racer may have run the builder, but
// all of them observe the single retained instance.
func (c *instanceCell) store(ref any) any {
	boxed := &ref
	if c.ptr.CompareAndSwap(nil, boxed) {
		return ref
	}
	return *c.ptr.Load()
}
