// Package handler contains the Echo HTTP handlers for the storefront API.
package handler

import "fmt"

// money renders an unrounded amount as a 2-decimal string. All internal
// arithmetic stays on the raw floats; this is the only rounding step.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
