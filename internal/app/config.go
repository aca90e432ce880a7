package app

import (
	"errors"
	"fmt"
)

// Commands understood by the application.
const (
	CommandList   = "list"
	CommandRun    = "run"
	CommandRunAll = "run-all"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command     string // list, run, run-all
	ExampleName string // required for run
	SuitePath   string // optional .hcl file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates the raw configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandList, CommandRunAll:
		if cfg.ExampleName != "" {
			return nil, fmt.Errorf("command %q does not take an example name", cfg.Command)
		}
	case CommandRun:
		if cfg.ExampleName == "" {
			return nil, errors.New("command \"run\" requires an example name")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return &cfg, nil
}
