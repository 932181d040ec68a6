// Package syncmap offers a small generic string-keyed map guarded by a
// sync.RWMutex.  The catalog uses it as its UPC index because a single catalog
// instance is shared by every CLI sub-command.
package syncmap
