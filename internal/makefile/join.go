package makefile

import (
	"strings"
	"unicode"
)

// JoinContinuations merges backslash-continued lines into logical lines.
// A line whose last non-whitespace character is a backslash is joined
// with the following line, the marker replaced by a single space;
// chains of any length collapse into one logical line. A non-empty
// pending buffer at end of input is emitted as a final line.
func JoinContinuations(lines []string) []string {
	out := make([]string, 0, len(lines))
	var buf strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.HasSuffix(trimmed, `\`) {
			buf.WriteString(trimmed[:len(trimmed)-1])
			buf.WriteByte(' ')
			continue
		}
		buf.WriteString(line)
		out = append(out, buf.String())
		buf.Reset()
	}
	if buf.Len() > 0 {
		out = append(out, buf.String())
	}
	return out
}
