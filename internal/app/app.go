package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/patternlab/internal/ctxlog"
	"github.com/vk/patternlab/internal/registry"
	"github.com/vk/patternlab/internal/suite"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger

	registry *registry.Registry
	suite    *suite.Config
	config   *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Demonstration output goes to outW; logs go to logW.
func New(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with the example modules.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreExamples
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All example modules registered.", "count", reg.Len())

	// Validate the integrity of the registry. A failure here is a programmer
	// error (a malformed module), so we panic.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	// Load the optional suite configuration. A failure to load config is a
	// fatal startup error.
	suiteCfg := suite.NewConfig()
	if cfg.SuitePath != "" {
		loaded, err := suite.Load(ctx, cfg.SuitePath)
		if err != nil {
			panic(fmt.Errorf("failed to load suite configuration: %w", err))
		}
		suiteCfg = loaded
	}

	// Every example a suite mentions must exist, before anything runs.
	if err := validateSuite(reg, suiteCfg); err != nil {
		panic(err)
	}
	logger.Debug("Suite configuration validated.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		suite:    suiteCfg,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// validateSuite checks that every example name a suite references is
// registered.
func validateSuite(reg *registry.Registry, cfg *suite.Config) error {
	for _, name := range cfg.Examples {
		if _, err := reg.Lookup(name); err != nil {
			return fmt.Errorf("suite selects unknown example: %w", err)
		}
	}
	for name := range cfg.Arguments {
		if _, err := reg.Lookup(name); err != nil {
			return fmt.Errorf("suite configures unknown example: %w", err)
		}
	}
	return nil
}
