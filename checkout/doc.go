// Package checkout rings up items placed on a checkout counter against a
// catalog and renders the resulting receipt in a given locale and currency.
package checkout
