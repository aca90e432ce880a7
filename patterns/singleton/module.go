// Package singleton demonstrates a process-wide shared instance that is
// created exactly once, at package initialization, with no lazy first-call
// race.
package singleton

import (
	"context"
	"fmt"
	"reflect"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input is empty because this demonstration takes no arguments.
type Input struct{}

// Settings is the shared configuration object the process holds exactly one of.
type Settings struct {
	AppName    string
	MaxRetries int
}

// instance is created at program start. There is no lazy initialization and
// therefore no hidden first-call race to guard against.
var instance = &Settings{
	AppName:    "patternlab",
	MaxRetries: 3,
}

// Instance returns the process-wide settings object.
func Instance() *Settings {
	return instance
}

// OnRunSingleton is the handler for the 'singleton' demonstration.
func OnRunSingleton(ctx context.Context, input any) ([]string, error) {
	first := Instance()
	second := Instance()

	return []string{
		"settings instance created once, at program start",
		fmt.Sprintf("first access:  app=%s retries=%d", first.AppName, first.MaxRetries),
		fmt.Sprintf("second access: app=%s retries=%d", second.AppName, second.MaxRetries),
		fmt.Sprintf("both accesses share one instance: %t", first == second),
	}, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("singleton", &registry.Example{
		Description: "one process-wide settings instance, created at startup",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunSingleton,
	})
}
