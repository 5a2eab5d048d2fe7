// Package sourcelist composes the Makefile interpreter and the source
// resolver into the one operation the CLI exposes: turning an object
// group of one game's Makefile into an ordered list of source paths.
package sourcelist

import (
	"fmt"
	"os"
	"path/filepath"

	funk "github.com/thoas/go-funk"

	"github.com/iortcw/mesontool/internal/makefile"
	"github.com/iortcw/mesontool/internal/resolve"
)

// ResolutionError reports the first object token that could not be
// mapped to a source file. One bad token fails the whole listing;
// partial lists are never produced.
type ResolutionError struct {
	Token string
	Group string
	Game  string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to map object '%s' in group %s (%s)", e.Token, e.Group, e.Game)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// List extracts the object group from <root>/<game>/Makefile with vars
// as the initial store and resolves every token, preserving order and
// dropping duplicate paths.
func List(root, game, group string, vars map[string]string) ([]string, error) {
	if err := makefile.CheckGroup(group); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(filepath.Join(root, game, "Makefile"))
	if err != nil {
		return nil, fmt.Errorf("read makefile: %w", err)
	}

	objects, err := makefile.ExtractObjects(string(src), vars, group)
	if err != nil {
		return nil, err
	}

	r := resolve.New(root, game)
	sources := make([]string, 0, len(objects))
	for _, obj := range objects {
		path, err := r.Source(obj)
		if err != nil {
			return nil, &ResolutionError{Token: obj, Group: group, Game: game, Err: err}
		}
		sources = append(sources, path)
	}
	return funk.UniqString(sources), nil
}
