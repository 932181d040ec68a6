package matcher

import "strings"

// Match reports whether any of names satisfies pattern.  "*" matches
// everything, an empty pattern matches nothing, any other pattern is a
// case-insensitive prefix; a trailing "*" is accepted and ignored.
func Match(pattern string, names ...string) bool {
	if pattern == "*" {
		return true
	}
	pattern = strings.TrimSuffix(pattern, "*")
	if pattern == "" {
		return false
	}
	pattern = strings.ToLower(pattern)
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), pattern) {
			return true
		}
	}
	return false
}
