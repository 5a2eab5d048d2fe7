package makefile

import (
	"regexp"
	"slices"
	"strings"
)

// maxExpandPasses bounds substitution on self-referential definitions,
// standing in for cycle detection.
const maxExpandPasses = 32

var (
	nestedFindstringRx = regexp.MustCompile(`\$\(findstring\s+\$\(([A-Za-z0-9_]+)\),([^)]+)\)`)
	findstringRx       = regexp.MustCompile(`\$\(findstring\s+([^,]+),([^)]+)\)`)
	varRefRx           = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)
)

// Expand returns the fully expanded form of text against vars. Missing
// variables expand to the empty string. The result is whitespace-trimmed
// and one surrounding layer of double quotes is removed.
func Expand(text string, vars map[string]string) string {
	out, _ := ExpandTrace(text, vars)
	return out
}

// ExpandTrace expands like Expand and additionally reports whether the
// text reached a fixed point before the pass cap.
func ExpandTrace(text string, vars map[string]string) (string, bool) {
	stable := false
	for i := 0; i < maxExpandPasses; i++ {
		prev := text

		// $(findstring $(VAR),HAYSTACK): the needle is the raw store
		// value of VAR, not its expansion.
		text = nestedFindstringRx.ReplaceAllStringFunc(text, func(m string) string {
			sub := nestedFindstringRx.FindStringSubmatch(m)
			needle := vars[strings.TrimSpace(sub[1])]
			haystack := Expand(strings.TrimSpace(sub[2]), vars)
			return findstring(needle, haystack)
		})
		text = findstringRx.ReplaceAllStringFunc(text, func(m string) string {
			sub := findstringRx.FindStringSubmatch(m)
			needle := Expand(strings.TrimSpace(sub[1]), vars)
			haystack := Expand(strings.TrimSpace(sub[2]), vars)
			return findstring(needle, haystack)
		})
		text = varRefRx.ReplaceAllStringFunc(text, func(m string) string {
			sub := varRefRx.FindStringSubmatch(m)
			return vars[sub[1]]
		})

		if text == prev {
			stable = true
			break
		}
	}
	return trimQuoted(text), stable
}

// findstring keeps the legacy dual match: the needle counts as found
// when it is a whitespace word of the haystack or a raw substring of it.
func findstring(needle, haystack string) string {
	if needle == "" {
		return ""
	}
	if slices.Contains(strings.Fields(haystack), needle) || strings.Contains(haystack, needle) {
		return needle
	}
	return ""
}

func trimQuoted(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return s
}
