// Package registry provides the central "glue" for the example system.
//
// The Registry stores mappings between the example names used on the command
// line (e.g., "factory") and the compiled Go functions and input types that
// implement each demonstration. Registration order is preserved: `list` and
// `run-all` iterate the examples in exactly the order their modules were
// registered at startup.
//
// During application startup, the registry is populated and then validated to
// ensure every registered handler is internally consistent, preventing a
// class of runtime errors.
package registry
