// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import "strings"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// Painter wraps text in SGR codes. A disabled Painter returns text unchanged,
// which keeps output clean when writing to files or with --no-color.
type Painter struct {
	Enabled bool
}

// Paint returns s wrapped in codes followed by Reset.
func (p Painter) Paint(s string, codes ...string) string {
	if !p.Enabled || len(codes) == 0 || s == "" {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Strip removes the SGR sequences defined in this package from s.
func Strip(s string) string {
	for _, code := range []string{Reset, Bold, Dim, Blue, Yellow, Green, Red, Cyan, Magenta} {
		s = strings.ReplaceAll(s, code, "")
	}
	return s
}
