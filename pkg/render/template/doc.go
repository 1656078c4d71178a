// Package template defines surface-agnostic template interfaces and
// adapters, keeping the SVG surface decoupled from the concrete template
// engine.
package template
