// Package matcher implements the tool name patterns accepted by the CLI.
package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern nothing, anything else is a name prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}
