// Package cart models stack-like holding areas and the recursive procedure that
// carefully moves a stack of items from a broken cart to a working cart using
// a spare, one item at a time, never exposing an item that is not on top.
//
// The procedure is the classic three-peg relocation: moving n items takes
// 2^n - 1 single-item moves.
package cart
