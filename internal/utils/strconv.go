// Package utils holds tiny shared helpers that have no better home.
package utils

import "strconv"

// AtoiDefault parses s as an int, returning def when s is empty or invalid.
// Used for optional numeric form fields such as the gallery display order.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
