package suite

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// argumentsBlock represents the content of the 'arguments' block within an
// example block.
type argumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// exampleBlock represents an `example` block from a user's suite file. It
// configures a single registered demonstration.
type exampleBlock struct {
	Name      string          `hcl:"name,label"`
	Arguments *argumentsBlock `hcl:"arguments,block"`
}

// suiteBlock represents the optional top-level `suite` block, which narrows
// the set of examples a run-all executes.
type suiteBlock struct {
	Examples []string `hcl:"examples,optional"`
}

// suiteFile represents the top-level structure of a suite file.
type suiteFile struct {
	Suite    *suiteBlock     `hcl:"suite,block"`
	Examples []*exampleBlock `hcl:"example,block"`
}

// Config is the merged, format-agnostic result of loading one or more suite
// files.
type Config struct {
	// Examples is the optional subset of example names to run. Empty means
	// "all registered examples".
	Examples []string

	// Arguments maps an example name to its argument attributes.
	Arguments map[string]map[string]cty.Value
}

// NewConfig returns an empty suite configuration, equivalent to running with
// no suite file at all.
func NewConfig() *Config {
	return &Config{
		Arguments: make(map[string]map[string]cty.Value),
	}
}
