// Package grocery defines Item, the product record stored in grocery lists,
// catalogs and carts, together with its text encoding.
package grocery
