// Package textutil holds the small string helpers used to turn Somtoday text
// into path segments and log-friendly values.
package textutil
