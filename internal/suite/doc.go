// Package suite loads optional HCL suite files that select which examples a
// run executes and supply per-example arguments. It parses the files with
// hclparse, decodes the block structure with gohcl, and exposes the argument
// attributes as cty values plus a tag-driven decoder into each example's
// typed input struct.
package suite
