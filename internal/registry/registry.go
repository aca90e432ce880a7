package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
)

// ErrNotFound is returned by Lookup when no example is registered under the
// requested name.
var ErrNotFound = errors.New("example not found")

// Module is the interface that all example packages must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Handler is the lifecycle function of one demonstration. It receives the
// decoded input struct (the value produced by NewInput) and returns the
// output lines the demonstration produced.
type Handler func(ctx context.Context, input any) ([]string, error)

// Example holds the compiled Go parts of one registered demonstration.
type Example struct {
	Description string
	NewInput    func() any
	InputType   reflect.Type
	Fn          Handler
}

// Registry holds all registered examples for a single application instance.
// Iteration order is registration order.
type Registry struct {
	order    []string
	examples map[string]*Example
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		examples: make(map[string]*Example),
	}
}

// RegisterExample registers a demonstration under the given name.
func (r *Registry) RegisterExample(name string, ex *Example) {
	if _, exists := r.examples[name]; exists {
		panic(fmt.Sprintf("example with name '%s' already registered", name))
	}
	slog.Debug("Registering example.", "name", name)
	r.order = append(r.order, name)
	r.examples[name] = ex
}

// Lookup returns the example registered under name. The returned error wraps
// ErrNotFound when the name is absent.
func (r *Registry) Lookup(name string) (*Example, error) {
	ex, ok := r.examples[name]
	if !ok {
		return nil, fmt.Errorf("example %q: %w", name, ErrNotFound)
	}
	return ex, nil
}

// Names returns all registered example names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered examples.
func (r *Registry) Len() int {
	return len(r.order)
}
