// Package decorator demonstrates wrapping a value in successive decorators,
// each exclusively owning the one it wraps. The wrapping chain is explicit:
// a decorator takes ownership of its inner drink at construction and nothing
// else holds a reference to it.
package decorator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the decorator demonstration.
type Input struct {
	Milk  bool `pl:"milk"`
	Sugar bool `pl:"sugar"`
}

// Drink is the capability shared by the base coffee and every decorator.
type Drink interface {
	Description() string
	Cost() float64
}

// Espresso is the undecorated base drink.
type Espresso struct{}

func (Espresso) Description() string { return "espresso" }
func (Espresso) Cost() float64       { return 2.00 }

// WithMilk owns the drink it wraps.
type WithMilk struct {
	inner Drink
}

func (d WithMilk) Description() string { return d.inner.Description() + " + milk" }
func (d WithMilk) Cost() float64       { return d.inner.Cost() + 0.50 }

// WithSugar owns the drink it wraps.
type WithSugar struct {
	inner Drink
}

func (d WithSugar) Description() string { return d.inner.Description() + " + sugar" }
func (d WithSugar) Cost() float64       { return d.inner.Cost() + 0.25 }

// OnRunDecorator is the handler for the 'decorator' demonstration.
func OnRunDecorator(ctx context.Context, input any) ([]string, error) {
	in := input.(*Input)

	var drink Drink = Espresso{}
	lines := []string{fmt.Sprintf("base: %s (%.2f)", drink.Description(), drink.Cost())}

	if in.Milk {
		drink = WithMilk{inner: drink}
		lines = append(lines, fmt.Sprintf("wrapped: %s (%.2f)", drink.Description(), drink.Cost()))
	}
	if in.Sugar {
		drink = WithSugar{inner: drink}
		lines = append(lines, fmt.Sprintf("wrapped: %s (%.2f)", drink.Description(), drink.Cost()))
	}

	lines = append(lines, fmt.Sprintf("final order: %s for %.2f", drink.Description(), drink.Cost()))
	return lines, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("decorator", &registry.Example{
		Description: "coffee wrapped by milk and sugar decorators",
		NewInput: func() any {
			// Both toppings on by default so the chain is visible without a
			// suite file.
			return &Input{Milk: true, Sugar: true}
		},
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnRunDecorator,
	})
}
