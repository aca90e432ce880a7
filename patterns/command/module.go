// Package command demonstrates queueing operations as command values,
// executing them through an invoker, and undoing the most recent one. The
// command set is closed: switch-on and switch-off.
package command

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

// Light is the receiver the commands act on.
type Light struct {
	on bool
}

func (l *Light) State() string {
	if l.on {
		return "on"
	}
	return "off"
}

// Command is one reversible operation on the light.
type Command interface {
	Execute() string
	Undo() string
}

type SwitchOn struct {
	light *Light
}

func (c SwitchOn) Execute() string {
	c.light.on = true
	return "executed: switch on"
}

func (c SwitchOn) Undo() string {
	c.light.on = false
	return "undone: switch on"
}

type SwitchOff struct {
	light *Light
}

func (c SwitchOff) Execute() string {
	c.light.on = false
	return "executed: switch off"
}

func (c SwitchOff) Undo() string {
	c.light.on = true
	return "undone: switch off"
}

// Invoker runs queued commands in order and remembers them for undo.
type Invoker struct {
	history []Command
}

func (i *Invoker) Run(c Command) string {
	i.history = append(i.history, c)
	return c.Execute()
}

// UndoLast reverses the most recent command, if any.
func (i *Invoker) UndoLast() (string, bool) {
	if len(i.history) == 0 {
		return "", false
	}
	last := i.history[len(i.history)-1]
	i.history = i.history[:len(i.history)-1]
	return last.Undo(), true
}

// OnRunCommand is the handler for the 'command' demonstration.
func OnRunCommand(ctx context.Context, input any) ([]string, error) {
	light := &Light{}
	invoker := &Invoker{}

	lines := []string{fmt.Sprintf("light starts %s", light.State())}
	lines = append(lines, invoker.Run(SwitchOn{light: light}))
	lines = append(lines, invoker.Run(SwitchOff{light: light}))
	lines = append(lines, fmt.Sprintf("light is now %s", light.State()))

	if undo, ok := invoker.UndoLast(); ok {
		lines = append(lines, undo)
	}
	lines = append(lines, fmt.Sprintf("after undo the light is %s", light.State()))
	return lines, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("command", &registry.Example{
		Description: "light-switch commands queued by an invoker with undo",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunCommand,
	})
}
