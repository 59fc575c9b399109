package dibox

import (
	"reflect"
	"sync"
)

// typeKey uniquely identifies a bound type. reflect.Type values are
// canonicalized by the runtime, so key equality is equality of the
// static type and distinct types never collide.
type typeKey = reflect.Type

var typeNameCache sync.Map

func keyOf[T any]() typeKey {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// nameOf returns the display name for a key. Type-to-string conversion
// allocates, so results are cached for the process lifetime.
func nameOf(key typeKey) string {
	if cached, ok := typeNameCache.Load(key); ok {
		return cached.(string)
	}
	name := key.String()
	typeNameCache.Store(key, name)
	return name
}
