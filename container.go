package dibox

import (
	"sync"

	"go.uber.org/zap"
)

// rwLocker is the concurrency discipline over the binding map. The
// concurrent variant uses a sync.RWMutex; the single-owner variant uses
// no synchronization at all.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// Container maps type identities to bindings and produces fully built
// instances on demand. A container is created in one of two modes,
// fixed for its lifetime: New returns a single-owner container that
// must not be shared across goroutines, NewConcurrent returns one that
// may be.
type Container struct {
	mu       rwLocker
	bindings map[typeKey]*binding
	log      *zap.Logger
}

// New creates an empty single-owner container. All operations run on
// the caller's goroutine with no internal synchronization.
func New(opts ...Option) *Container {
	return newContainer(noopLocker{}, opts)
}

// NewConcurrent creates an empty container that is safe for concurrent
// use. Lookups proceed in parallel with each other but mutually
// exclude registration; singleton cache population is lock-free and
// first-write-wins.
func NewConcurrent(opts ...Option) *Container {
	return newContainer(&sync.RWMutex{}, opts)
}

func newContainer(mu rwLocker, opts []Option) *Container {
	c := &Container{
		mu:       mu,
		bindings: make(map[typeKey]*binding, 16),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BindTransient registers a builder with transient lifetime. Each
// resolution invokes the builder and yields an independent instance.
// Returns DuplicateBindingError if T is already bound.
func BindTransient[T any](c *Container, build Builder[T]) error {
	return bindBuilder(c, build, Transient)
}

// BindSingleton registers a builder with singleton lifetime. The
// builder runs on first resolution; every resolution returns a handle
// to the same instance for the container's life.
// Returns DuplicateBindingError if T is already bound.
func BindSingleton[T any](c *Container, build Builder[T]) error {
	return bindBuilder(c, build, Singleton)
}

// BindInstance registers an already-constructed value as a singleton.
// No builder runs at resolution time; every handle refers to the given
// value.
func BindInstance[T any](c *Container, value T) error {
	key := keyOf[T]()
	ref := &value
	b := &binding{
		key:      key,
		lifetime: Singleton,
		build:    func(*Resolver) (any, error) { return ref, nil },
	}
	b.cell.store(ref)
	return c.bind(b)
}

// Contains reports whether T has a binding. It never invokes builders.
func Contains[T any](c *Container) bool {
	_, ok := c.lookup(keyOf[T]())
	return ok
}

func bindBuilder[T any](c *Container, build Builder[T], lifetime Lifetime) error {
	key := keyOf[T]()
	if build == nil {
		return &NilBuilderError{Type: nameOf(key)}
	}
	erased := func(r *Resolver) (any, error) {
		value, err := build(r)
		if err != nil {
			return nil, err
		}
		// Fresh box per invocation so transient instances have
		// distinct identities.
		return &value, nil
	}
	return c.bind(&binding{key: key, lifetime: lifetime, build: erased})
}

// bind inserts if absent. Under the write lock exactly one of two
// concurrent registrations for the same key wins; the loser observes
// DuplicateBindingError.
func (c *Container) bind(b *binding) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.bindings[b.key]; ok {
		c.log.Warn("duplicate binding rejected", zap.String("type", nameOf(b.key)))
		return &DuplicateBindingError{Type: nameOf(b.key)}
	}
	c.bindings[b.key] = b
	c.log.Debug("binding registered",
		zap.String("type", nameOf(b.key)),
		zap.String("lifetime", string(b.lifetime)))
	return nil
}

func (c *Container) lookup(key typeKey) (*binding, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.bindings[key]
	return b, ok
}

// Boot eagerly constructs every registered singleton that has not been
// resolved yet. Each singleton boots as its own top-level resolution,
// so builders may resolve their dependencies as usual. Boot stops at
// the first failure and returns that error.
func (c *Container) Boot() error {
	c.mu.RLock()
	keys := make([]typeKey, 0, len(c.bindings))
	for key, b := range c.bindings {
		if b.lifetime == Singleton {
			keys = append(keys, key)
		}
	}
	c.mu.RUnlock()

	for _, key := range keys {
		if _, err := c.resolver().resolveKey(key); err != nil {
			return err
		}
	}
	return nil
}
