package dibox

import (
	"fmt"

	"go.uber.org/zap"
)

// Scope is anything a resolution can start from: the Container itself
// (a fresh top-level resolution) or the Resolver handed to a Builder
// (a nested resolution continuing the current path). The same Resolve
// call serves both.
type Scope interface {
	resolver() *Resolver
}

func (c *Container) resolver() *Resolver {
	return &Resolver{container: c, path: make([]typeKey, 0, 8)}
}

// Resolver carries one resolution's state: the container being resolved
// against and the path of types currently under construction. The path
// is scoped to a single top-level resolution and never shared, so
// unrelated concurrent resolutions cannot raise false cycles against
// each other.
type Resolver struct {
	container *Container
	path      []typeKey
}

func (r *Resolver) resolver() *Resolver { return r }

// Container returns the container this resolution runs against.
func (r *Resolver) Container() *Container { return r.container }

// Resolve produces a handle to an instance of T. Singleton bindings
// return the cached instance once populated; transient bindings invoke
// their builder every call. A repeated type on the active resolution
// path fails with CircularDependencyError carrying the full cycle.
func Resolve[T any](s Scope) (Shared[T], error) {
	r := s.resolver()
	key := keyOf[T]()

	ref, err := r.resolveKey(key)
	if err != nil {
		return Shared[T]{}, err
	}
	typed, ok := ref.(*T)
	if !ok {
		return Shared[T]{}, &TypeMismatchError{
			Expected: nameOf(key),
			Got:      fmt.Sprintf("%T", ref),
		}
	}
	return Shared[T]{ref: typed}, nil
}

// resolveKey is the type-erased resolution engine. The returned value
// is the instance boxed as *T. The path entry pushed here is popped on
// every return, success or failure, so failures never leak path state
// into later resolutions.
func (r *Resolver) resolveKey(key typeKey) (any, error) {
	if at := r.indexOf(key); at >= 0 {
		err := r.cycleError(at, key)
		r.container.log.Warn("circular dependency", zap.Error(err))
		return nil, err
	}
	r.path = append(r.path, key)
	defer func() { r.path = r.path[:len(r.path)-1] }()

	b, ok := r.container.lookup(key)
	if !ok {
		r.container.log.Warn("no binding found", zap.String("type", nameOf(key)))
		return nil, &BindingNotFoundError{Type: nameOf(key)}
	}

	if b.lifetime == Singleton {
		if ref, ok := b.cell.load(); ok {
			return ref, nil
		}
	}

	ref, err := b.build(r)
	if err != nil {
		return nil, err
	}
	if b.lifetime == Singleton {
		// First writer wins; racing builders all adopt the
		// retained instance.
		ref = b.cell.store(ref)
	}
	r.container.log.Debug("resolved",
		zap.String("type", nameOf(key)),
		zap.String("lifetime", string(b.lifetime)))
	return ref, nil
}

func (r *Resolver) indexOf(key typeKey) int {
	for i, k := range r.path {
		if k == key {
			return i
		}
	}
	return -1
}

// cycleError renders the suffix of the path from the first occurrence
// of the repeated key, plus the repeat itself: A -> B -> A.
func (r *Resolver) cycleError(from int, key typeKey) error {
	chain := make([]string, 0, len(r.path)-from+1)
	for _, k := range r.path[from:] {
		chain = append(chain, nameOf(k))
	}
	chain = append(chain, nameOf(key))
	return &CircularDependencyError{Chain: chain}
}
