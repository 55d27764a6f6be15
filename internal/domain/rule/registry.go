package rule

import (
	"fmt"

	"github.com/flexprice/shipdiscount/internal/logger"
)

// Constructor builds a rule instance from casted parameters
type Constructor[T any] func(params Params, log *logger.Logger) (T, error)

// Registry maps rule names to constructors, keeping registration order.
// It is filled once at startup and only read afterwards.
type Registry[T any] struct {
	names        []string
	constructors map[string]Constructor[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		constructors: make(map[string]Constructor[T]),
	}
}

// Register adds a constructor under name. Registering a name twice is a programming error.
func (r *Registry[T]) Register(name string, ctor Constructor[T]) *Registry[T] {
	if _, exists := r.constructors[name]; exists {
		panic(fmt.Sprintf("rule %q already registered", name))
	}
	r.names = append(r.names, name)
	r.constructors[name] = ctor
	return r
}

// Get returns the constructor registered under name
func (r *Registry[T]) Get(name string) (Constructor[T], bool) {
	ctor, ok := r.constructors[name]
	return ctor, ok
}

// Names returns the registered rule names in registration order
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry[T]) Len() int {
	return len(r.names)
}
