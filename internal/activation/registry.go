package activation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Names of the built-in activators.
const (
	LinearName       = "linear"
	TanhName         = "tanh"
	SigmoidName      = "sigmoid"
	ELUName          = "elu"
	SoftplusName     = "softplus"
	BentIdentityName = "bent-identity"

	// DefaultName is the activator a node gets when none is supplied.
	DefaultName = SigmoidName
)

// Registry errors.
var (
	ErrInvalidName       = errors.New("activation name is required")
	ErrNilActivator      = errors.New("activation function is required")
	ErrActivatorExists   = errors.New("activation already registered")
	ErrActivatorNotFound = errors.New("activation not found")
)

// Registry maps names to activators of one scalar type.
//
// A Registry is safe for concurrent use. New entries can be added at any
// time; existing entries are never replaced.
type Registry[T Scalar] struct {
	mu sync.RWMutex
	m  map[string]Func[T]
}

// NewRegistry creates a registry holding the built-in activators.
func NewRegistry[T Scalar]() *Registry[T] {
	r := &Registry[T]{m: make(map[string]Func[T])}
	for name, fn := range builtins[T]() {
		r.m[name] = fn
	}
	return r
}

func builtins[T Scalar]() map[string]Func[T] {
	return map[string]Func[T]{
		LinearName:       Linear[T],
		TanhName:         Tanh[T],
		SigmoidName:      Sigmoid[T],
		ELUName:          ELU[T],
		SoftplusName:     Softplus[T],
		BentIdentityName: BentIdentity[T],
	}
}

// Register adds fn under name.
func (r *Registry[T]) Register(name string, fn Func[T]) error {
	if name == "" {
		return ErrInvalidName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilActivator, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrActivatorExists, name)
	}
	r.m[name] = fn
	return nil
}

// Get returns the activator registered under name.
func (r *Registry[T]) Get(name string) (Func[T], error) {
	r.mu.RLock()
	fn, ok := r.m[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActivatorNotFound, name)
	}
	return fn, nil
}

// MustGet is like Get but panics if name is not registered.
func (r *Registry[T]) MustGet(name string) Func[T] {
	fn, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
