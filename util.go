package argumentum

import (
	"strings"
	"unicode"
)

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func stripDashes(name string) string {
	return strings.TrimLeft(name, "-")
}

func hasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) != -1
}
