// Package builder demonstrates assembling an immutable value field-by-field
// through an explicit builder that can be finalized exactly once.
package builder

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the builder demonstration.
type Input struct {
	Size      string `pl:"size"`
	Cheese    bool   `pl:"cheese"`
	Pepperoni bool   `pl:"pepperoni"`
}

// Pizza is the finished, immutable product. It has no setters; the only way
// to obtain one is through a Builder.
type Pizza struct {
	size      string
	cheese    bool
	pepperoni bool
}

// Describe renders the pizza as a single line.
func (p Pizza) Describe() string {
	toppings := []string{}
	if p.cheese {
		toppings = append(toppings, "cheese")
	}
	if p.pepperoni {
		toppings = append(toppings, "pepperoni")
	}
	if len(toppings) == 0 {
		return fmt.Sprintf("%s pizza, plain", p.size)
	}
	return fmt.Sprintf("%s pizza with %s", p.size, strings.Join(toppings, " and "))
}

// Builder assembles a Pizza one field at a time. Build finalizes it; a
// second Build on the same builder is an error.
type Builder struct {
	pizza Pizza
	built bool
}

// NewBuilder starts a builder with a medium base.
func NewBuilder() *Builder {
	return &Builder{pizza: Pizza{size: "medium"}}
}

func (b *Builder) Size(size string) *Builder {
	b.pizza.size = size
	return b
}

func (b *Builder) Cheese() *Builder {
	b.pizza.cheese = true
	return b
}

func (b *Builder) Pepperoni() *Builder {
	b.pizza.pepperoni = true
	return b
}

// Build finalizes the pizza.
func (b *Builder) Build() (Pizza, error) {
	if b.built {
		return Pizza{}, errors.New("builder already finalized")
	}
	b.built = true
	return b.pizza, nil
}

// OnRunBuilder is the handler for the 'builder' demonstration.
func OnRunBuilder(ctx context.Context, input any) ([]string, error) {
	in := input.(*Input)

	b := NewBuilder()
	lines := []string{"starting a medium pizza"}

	if in.Size != "" {
		b.Size(in.Size)
		lines = append(lines, fmt.Sprintf("set size to %s", in.Size))
	}
	if in.Cheese {
		b.Cheese()
		lines = append(lines, "added cheese")
	}
	if in.Pepperoni {
		b.Pepperoni()
		lines = append(lines, "added pepperoni")
	}

	pizza, err := b.Build()
	if err != nil {
		return nil, err
	}
	lines = append(lines, fmt.Sprintf("built: %s", pizza.Describe()))

	// Finalizing the same builder twice is rejected.
	if _, err := b.Build(); err != nil {
		lines = append(lines, fmt.Sprintf("second build rejected: %v", err))
	}

	return lines, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("builder", &registry.Example{
		Description: "immutable pizza assembled field-by-field, finalized once",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunBuilder,
	})
}
