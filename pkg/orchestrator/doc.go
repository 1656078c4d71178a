// Package orchestrator wires the compose → binding → style → surface render
// pipeline, providing dependency injection friendly helpers for consumers
// that prefer a single entry point. Interactive preview and export run
// through the same path; only scale and target surface differ.
package orchestrator
