// Package factory demonstrates a factory over a closed set of animal
// variants. The set of kinds is fixed at compile time; an unrecognized kind
// is a demonstration failure, not a fallthrough.
package factory

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the factory demonstration.
type Input struct {
	// Kind selects which animal the factory builds: dog, cat, or duck.
	Kind string `pl:"kind"`
}

// Animal is the capability every factory product provides. The implementers
// form a closed set: Dog, Cat, and Duck.
type Animal interface {
	Name() string
	Speak() string
}

type Dog struct{}

func (Dog) Name() string  { return "dog" }
func (Dog) Speak() string { return "Woof" }

type Cat struct{}

func (Cat) Name() string  { return "cat" }
func (Cat) Speak() string { return "Meow" }

type Duck struct{}

func (Duck) Name() string  { return "duck" }
func (Duck) Speak() string { return "Quack" }

// NewAnimal builds the animal for the given kind. The error text is part of
// the demonstration: the factory rejects kinds outside its closed set.
func NewAnimal(kind string) (Animal, error) {
	switch kind {
	case "dog":
		return Dog{}, nil
	case "cat":
		return Cat{}, nil
	case "duck":
		return Duck{}, nil
	default:
		return nil, fmt.Errorf("Unknown type: %s", kind)
	}
}

// OnRunFactory is the handler for the 'factory' demonstration.
func OnRunFactory(ctx context.Context, input any) ([]string, error) {
	in := input.(*Input)

	kind := in.Kind
	if kind == "" {
		kind = "dog"
	}

	animal, err := NewAnimal(kind)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("factory built a %s", animal.Name()),
		fmt.Sprintf("the %s says %s", animal.Name(), animal.Speak()),
	}, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("factory", &registry.Example{
		Description: "closed animal factory; unknown kinds are rejected",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunFactory,
	})
}
