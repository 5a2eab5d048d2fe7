package makefile

import (
	"fmt"
	"strings"

	funk "github.com/thoas/go-funk"
)

// startMarker is where object-list interpretation begins. Everything
// before it would need GNU make semantics outside the supported subset.
const startMarker = "Q3OBJ ="

// objectSuffix marks the compiled-unit tokens the extractor keeps.
const objectSuffix = ".o"

// trackedGroups is the allow-list of aggregate variables that may be
// extracted. Anything else fails loudly instead of silently returning
// an empty list for a typo.
var trackedGroups = map[string]bool{
	"Q3OBJ":         true,
	"Q3ROBJ":        true,
	"Q3R2OBJ":       true,
	"Q3R2STRINGOBJ": true,
	"JPGOBJ":        true,
	"FTOBJ":         true,
	"Q3DOBJ":        true,
	"Q3CGOBJ_":      true,
	"Q3GOBJ_":       true,
	"Q3UIOBJ_":      true,
	"Q3CGOBJ":       true,
	"Q3GOBJ":        true,
	"Q3UIOBJ":       true,
}

// UnknownGroupError reports a group name outside the allow-list.
type UnknownGroupError struct {
	Group string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unsupported group: %s", e.Group)
}

// CheckGroup rejects a group name outside the allow-list.
func CheckGroup(group string) error {
	if !trackedGroups[group] {
		return &UnknownGroupError{Group: group}
	}
	return nil
}

// ExtractObjects interprets the object-list section of a Makefile
// against the seed variables and returns the expanded object tokens of
// group, de-duplicated in first-seen order.
func ExtractObjects(src string, seed map[string]string, group string) ([]string, error) {
	if err := CheckGroup(group); err != nil {
		return nil, err
	}

	lines := strings.Split(src, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, startMarker) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("start marker %q not found", startMarker)
	}

	in := NewInterpreter(seed)
	for _, line := range JoinContinuations(lines[start:]) {
		in.ProcessLine(line)
	}

	var objects []string
	for _, tok := range strings.Fields(Expand(in.Lookup(group), in.Vars())) {
		if strings.HasSuffix(tok, objectSuffix) {
			objects = append(objects, tok)
		}
	}
	return funk.UniqString(objects), nil
}
