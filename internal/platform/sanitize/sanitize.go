// Package sanitize normalizes human-entered text fields before
// uniqueness comparison and storage.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Clean removes every character outside [A-Za-z0-9 ], trims the result,
// lowercases it, and collapses whitespace runs to single spaces.
// Clean is idempotent: Clean(Clean(s)) == Clean(s).
func Clean(s string) string {
	out := nonAlnum.ReplaceAllString(s, "")
	out = strings.ToLower(strings.TrimSpace(out))
	return whitespace.ReplaceAllString(out, " ")
}
