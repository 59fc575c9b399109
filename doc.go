// Package dibox is a type-keyed dependency-resolution container.
//
// A container maps types to builders and resolves fully built object
// graphs on demand. Builders declare how to construct a value once;
// consumers request the type without threading constructor arguments
// by hand.
//
//	c := dibox.New()
//	dibox.MustBindSingleton(c, func(r *dibox.Resolver) (*Config, error) {
//		return LoadConfig()
//	})
//	dibox.MustBindTransient(c, func(r *dibox.Resolver) (*Service, error) {
//		cfg, err := dibox.Resolve[*Config](r)
//		if err != nil {
//			return nil, err
//		}
//		return NewService(cfg.Value()), nil
//	})
//	svc := dibox.MustResolve[*Service](c)
//
// Bindings have one of two lifetimes: Transient builds a fresh instance
// per resolution, Singleton builds once and shares the instance for the
// container's life. Resolution always returns a Shared handle so the
// lifetime policy stays with the container, not the caller.
//
// Cycle detection is built in: the resolution path is tracked per
// top-level Resolve call, and a repeated type fails with
// CircularDependencyError carrying the full chain. The path is never
// shared container state, so concurrent resolutions of overlapping
// graphs cannot raise false cycles against each other.
//
// New returns a single-owner container with no internal locking;
// NewConcurrent returns one safe for concurrent use. In concurrent
// containers, first-time singleton construction follows a benign-race
// policy: racing builders may each run, exactly one result is retained,
// and every caller observes the retained instance. Singleton builders
// must therefore be safe to invoke more than once concurrently during
// first access.
package dibox
