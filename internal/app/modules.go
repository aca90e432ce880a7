package app

import (
	"github.com/vk/patternlab/internal/registry"
	"github.com/vk/patternlab/patterns/adapter"
	"github.com/vk/patternlab/patterns/builder"
	"github.com/vk/patternlab/patterns/command"
	"github.com/vk/patternlab/patterns/decorator"
	"github.com/vk/patternlab/patterns/factory"
	"github.com/vk/patternlab/patterns/observer"
	"github.com/vk/patternlab/patterns/singleton"
	"github.com/vk/patternlab/patterns/strategy"
)

// coreExamples is the definitive list of all demonstrations compiled into
// the patternlab binary. The order here is the registration order, and
// therefore the order of `list` and `run-all`.
var coreExamples = []registry.Module{
	&singleton.Module{},
	&factory.Module{},
	&builder.Module{},
	&strategy.Module{},
	&observer.Module{},
	&decorator.Module{},
	&command.Module{},
	&adapter.Module{},
}
