package dibox

import (
	"fmt"
	"strings"
)

// BindingNotFoundError represents a missing binding error.
type BindingNotFoundError struct {
	Type string
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("no binding found for type: %s", e.Type)
}

// DuplicateBindingError represents an attempt to register a type that
// already has a binding. The original binding is left untouched.
type DuplicateBindingError struct {
	Type string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("binding already registered for type: %s", e.Type)
}

// NilBuilderError represents an attempt to bind a nil builder.
type NilBuilderError struct {
	Type string
}

func (e *NilBuilderError) Error() string {
	return fmt.Sprintf("nil builder provided for type: %s", e.Type)
}

// CircularDependencyError represents a circular dependency detection
// error. Chain holds the display names of the resolution path from the
// first occurrence of the repeated type through the repeat itself, so
// the message renders the full cycle.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Chain, " -> "))
}

// TypeMismatchError represents a failed downcast of a stored instance
// back to its registration type. Key derivation makes this statically
// impossible; it exists so an internal inconsistency fails loudly
// instead of corrupting state.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}
