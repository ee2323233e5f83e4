package common

import (
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// HasSpace reports whether s contains a space character, which makes it
// unusable as a long option name or alias.
func HasSpace(s string) bool {
	return strings.ContainsRune(s, ' ')
}

// IsShort reports whether s is usable as a short option name: exactly one byte.
func IsShort(s string) bool {
	return len(s) == 1
}

// CQuote escapes s for use inside a double-quoted C string literal.
func CQuote(s string) string {
	return strings.NewReplacer(`"`, `\"`, "\n", `\n`).Replace(s)
}
