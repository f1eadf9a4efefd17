// Package strings holds the small string and slice guards module wiring uses
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix to one leading slash and no trailing one
// it panics when nothing but slashes and spaces is left
func MustPrefix(s string) string {
	s = std.Trim(s, " /")
	if s == "" {
		panic("route prefix is required")
	}
	return "/" + s
}
