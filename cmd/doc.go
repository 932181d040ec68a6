// Package cmd implements the sub-commands of the grocery command-line
// interface: shop, list, lookup and catalog.  Configuration loading and the
// catalog shared between commands live in shared.go.
package cmd
