package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the value, collapses runs of non-alphanumeric characters
// into single hyphens and trims leading/trailing hyphens. Empty input yields
// an empty slug; callers decide whether that is acceptable.
func Make(value string) string {
	var b strings.Builder

	lastHyphen := true

	for _, r := range strings.ToLower(value) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
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
