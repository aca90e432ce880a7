// Package runner executes registered demonstrations one at a time and
// captures their output. Every invocation is one-shot and synchronous: an
// example either produces its lines or reports an error, and nothing about
// the registry changes between runs.
package runner
