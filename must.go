package dibox

// Panic-on-error wrappers. These are thin presentation helpers over the
// result-returning calls; on failure they panic with the underlying
// typed error.

// MustResolve is Resolve that panics on failure.
func MustResolve[T any](s Scope) Shared[T] {
	handle, err := Resolve[T](s)
	if err != nil {
		panic(err)
	}
	return handle
}

// MustBindTransient is BindTransient that panics on failure.
func MustBindTransient[T any](c *Container, build Builder[T]) {
	if err := BindTransient(c, build); err != nil {
		panic(err)
	}
}

// MustBindSingleton is BindSingleton that panics on failure.
func MustBindSingleton[T any](c *Container, build Builder[T]) {
	if err := BindSingleton(c, build); err != nil {
		panic(err)
	}
}

// MustBindInstance is BindInstance that panics on failure.
func MustBindInstance[T any](c *Container, value T) {
	if err := BindInstance(c, value); err != nil {
		panic(err)
	}
}
