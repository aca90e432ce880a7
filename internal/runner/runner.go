package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/patternlab/internal/ctxlog"
	"github.com/vk/patternlab/internal/registry"
	"github.com/vk/patternlab/internal/suite"
	"github.com/zclconf/go-cty/cty"
)

// ErrDemonstration marks a failure inside an example's own logic, as opposed
// to a missing name or bad suite file.
var ErrDemonstration = errors.New("demonstration failed")

// demonstrationError wraps an example's internal error so callers can match
// it with errors.Is(err, ErrDemonstration) while keeping the original cause.
type demonstrationError struct {
	name string
	err  error
}

func (e *demonstrationError) Error() string {
	return fmt.Sprintf("example %q failed: %v", e.name, e.err)
}

func (e *demonstrationError) Unwrap() []error {
	return []error{ErrDemonstration, e.err}
}

// Report is the captured result of running one demonstration. Exactly one of
// Lines or Err is meaningful: a failed demonstration produces no partial
// output.
type Report struct {
	Name  string
	Lines []string
	Err   error
}

// Runner invokes registered demonstrations with their suite-configured
// arguments.
type Runner struct {
	registry *registry.Registry
	args     map[string]map[string]cty.Value
}

// New creates a runner over the given registry. args may be nil when no
// suite file was loaded.
func New(reg *registry.Registry, args map[string]map[string]cty.Value) *Runner {
	return &Runner{registry: reg, args: args}
}

// Run executes a single demonstration by name. It returns an error wrapping
// registry.ErrNotFound for an unknown name, or ErrDemonstration when the
// example's own logic fails.
func (r *Runner) Run(ctx context.Context, name string) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	ex, err := r.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	input, err := r.buildInput(name, ex)
	if err != nil {
		return nil, err
	}

	logger.Debug("Running demonstration.", "name", name)
	lines, err := ex.Fn(ctx, input)
	if err != nil {
		return nil, &demonstrationError{name: name, err: err}
	}

	return &Report{Name: name, Lines: lines}, nil
}

// RunAll executes the named demonstrations in order, or every registered one
// when names is empty. Individual failures are recorded on their report and
// never abort the remaining runs; the only error RunAll itself returns is an
// unknown name in the filter.
func (r *Runner) RunAll(ctx context.Context, names []string) ([]*Report, error) {
	if len(names) == 0 {
		names = r.registry.Names()
	} else {
		for _, name := range names {
			if _, err := r.registry.Lookup(name); err != nil {
				return nil, err
			}
		}
	}

	reports := make([]*Report, 0, len(names))
	for _, name := range names {
		report, err := r.Run(ctx, name)
		if err != nil {
			report = &Report{Name: name, Err: err}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// buildInput constructs the example's input struct and decodes any
// suite-provided arguments into it.
func (r *Runner) buildInput(name string, ex *registry.Example) (any, error) {
	if ex.NewInput == nil {
		return nil, nil
	}

	input := ex.NewInput()
	if args, ok := r.args[name]; ok {
		if err := suite.DecodeArguments(args, input); err != nil {
			return nil, fmt.Errorf("bad arguments for example %q: %w", name, err)
		}
	}
	return input, nil
}
