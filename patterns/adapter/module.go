// Package adapter demonstrates fitting a legacy component behind the
// interface newer code expects, without touching the legacy type.
package adapter

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/patternlab/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the adapter demonstration.
type Input struct {
	Title string `pl:"title"`
}

// Document is the interface modern callers consume.
type Document interface {
	Render() []string
}

// LegacyPrinter is the old component. Its interface predates Document and
// cannot change.
type LegacyPrinter struct{}

// PrintPage formats a page the old way: one banner string with embedded
// newlines.
func (LegacyPrinter) PrintPage(title string, body string) string {
	banner := strings.ToUpper(title)
	return banner + "\n" + strings.Repeat("-", len(banner)) + "\n" + body
}

// PrinterAdapter adapts a LegacyPrinter to the Document interface.
type PrinterAdapter struct {
	printer LegacyPrinter
	title   string
	body    string
}

// NewPrinterAdapter wraps the legacy printer for the given page.
func NewPrinterAdapter(printer LegacyPrinter, title, body string) *PrinterAdapter {
	return &PrinterAdapter{printer: printer, title: title, body: body}
}

// Render satisfies Document by splitting the legacy banner format into lines.
func (a *PrinterAdapter) Render() []string {
	return strings.Split(a.printer.PrintPage(a.title, a.body), "\n")
}

// OnRunAdapter is the handler for the 'adapter' demonstration.
func OnRunAdapter(ctx context.Context, input any) ([]string, error) {
	in := input.(*Input)

	title := in.Title
	if title == "" {
		title = "release notes"
	}

	var doc Document = NewPrinterAdapter(LegacyPrinter{}, title, "nothing changed, ship it")

	lines := []string{fmt.Sprintf("rendering %q through the legacy printer adapter", title)}
	lines = append(lines, doc.Render()...)
	return lines, nil
}

// Register registers the demonstration with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExample("adapter", &registry.Example{
		Description: "legacy printer adapted to the Document interface",
		NewInput:    func() any { return new(Input) },
		InputType:   reflect.TypeOf(Input{}),
		Fn:          OnRunAdapter,
	})
}
