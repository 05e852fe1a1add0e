// Package ansi provides ANSI escape code constants and helpers for the
// headless commands' terminal output.
package ansi

import "strings"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Blue   = "\033[34m"
	Yellow = "\033[33m"
	Green  = "\033[32m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

// Wrap surrounds s with codes and a trailing Reset. With no codes, or an
// empty s, it returns s unchanged.
func Wrap(s string, codes ...string) string {
	if len(codes) == 0 || s == "" {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}
