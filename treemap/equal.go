package treemap

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equaler may be implemented by value types that define their own
// equality. It takes precedence over the default comparison.
type Equaler[V any] interface {
	Equal(other V) bool
}

type eqFunc[V any] func(v1, v2 V) bool

// exportAll lets values with unexported fields be compared field by
// field instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func defaultEqual[V any](v1, v2 V) bool {
	if e, ok := any(v1).(Equaler[V]); ok {
		return e.Equal(v2)
	}
	return cmp.Equal(v1, v2, exportAll)
}
