// Package matcher implements the pattern semantics shared by the CLI filters.
package matcher
