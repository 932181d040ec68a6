// Package synclist implements List, an ordered collection of unique items that
// is materialised four times: a fixed-capacity array with a length counter, a
// growable slice, a doubly linked list and a singly linked list.  Every
// mutation is applied to all four representations and a consistency check
// verifies, independently of the mutation code, that they hold the same items
// in the same order.
//
// Boundary conditions follow a deliberate asymmetry: inserting a duplicate or
// removing an offset past the end are silent no-ops, while inserting past the
// end or beyond capacity are errors.  A failed consistency check is reported
// as ErrInvalidInternalState; mutators return it, accessors panic with it.
package synclist
