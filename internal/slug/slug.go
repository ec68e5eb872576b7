// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, trimming leading and trailing hyphens.
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
