package app

import (
	"context"
	"fmt"

	"github.com/vk/patternlab/internal/ctxlog"
	"github.com/vk/patternlab/internal/runner"
)

// Run executes the configured command against the registry.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	run := runner.New(a.registry, a.suite.Arguments)

	switch a.config.Command {
	case CommandList:
		return a.runList()
	case CommandRun:
		return a.runOne(ctx, run)
	case CommandRunAll:
		return a.runAll(ctx, run)
	default:
		// NewConfig already rejected anything else.
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}

// runList prints every registered example name in registration order.
func (a *App) runList() error {
	for _, name := range a.registry.Names() {
		fmt.Fprintln(a.outW, name)
	}
	a.logger.Debug("Listed registered examples.", "count", a.registry.Len())
	return nil
}

// runOne executes a single demonstration and prints its lines. Any failure
// propagates to the caller.
func (a *App) runOne(ctx context.Context, run *runner.Runner) error {
	report, err := run.Run(ctx, a.config.ExampleName)
	if err != nil {
		return err
	}
	for _, line := range report.Lines {
		fmt.Fprintln(a.outW, line)
	}
	a.logger.Debug("Demonstration finished.", "name", report.Name, "lines", len(report.Lines))
	return nil
}

// runAll executes every selected demonstration, annotating individual
// failures inline. It never fails outright.
func (a *App) runAll(ctx context.Context, run *runner.Runner) error {
	reports, err := run.RunAll(ctx, a.selectedNames())
	if err != nil {
		// Unreachable after validateSuite, kept as a safeguard.
		return err
	}

	for _, report := range reports {
		fmt.Fprintf(a.outW, "=== %s ===\n", report.Name)
		if report.Err != nil {
			fmt.Fprintf(a.outW, "error: %v\n", report.Err)
			a.logger.Warn("Demonstration reported an error.", "name", report.Name, "error", report.Err)
			continue
		}
		for _, line := range report.Lines {
			fmt.Fprintln(a.outW, line)
		}
	}
	a.logger.Debug("All demonstrations finished.", "count", len(reports))
	return nil
}

// selectedNames applies the suite's example filter while preserving
// registration order. An empty filter selects everything.
func (a *App) selectedNames() []string {
	if len(a.suite.Examples) == 0 {
		return nil
	}

	selected := make(map[string]struct{}, len(a.suite.Examples))
	for _, name := range a.suite.Examples {
		selected[name] = struct{}{}
	}

	var names []string
	for _, name := range a.registry.Names() {
		if _, ok := selected[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
