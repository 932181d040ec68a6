// Package catalog provides the lookup-by-code service: a UPC indexed set of
// grocery items loaded from a YAML document or from the grocery text format
// through any URL supported by github.com/viant/afs.
package catalog
