// Package types defines the part entity, the staged form draft, the filter
// evaluator, the PartsStore interface, and the standard error types for the
// parts inventory core.
package types
