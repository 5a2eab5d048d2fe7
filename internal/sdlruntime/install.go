// Package sdlruntime installs the SDL shared library a Meson build
// leaves under subprojects into the install tree.
package sdlruntime

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// runtimeName is the SDL shared library file the subproject produces.
const runtimeName = "SDL3.dll"

// patterns cover the directory names the SDL subproject has shipped as.
var patterns = []string{
	"subprojects/SDL3-*/" + runtimeName,
	"subprojects/SDL3*/" + runtimeName,
	"subprojects/sdl3-*/" + runtimeName,
	"subprojects/sdl3*/" + runtimeName,
}

// Installer copies the SDL runtime from a build tree into an install
// tree. Stdout receives one progress line per copied file; it defaults
// to os.Stdout.
type Installer struct {
	BuildRoot   string
	InstallRoot string
	Stdout      io.Writer
}

// Find locates the SDL runtime under buildRoot. When several subproject
// layouts match, the most recently modified copy wins.
func Find(buildRoot string) (string, error) {
	var candidates []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(buildRoot, pattern))
		if err != nil {
			return "", fmt.Errorf("glob %s: %w", pattern, err)
		}
		candidates = append(candidates, matches...)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%s not found in subprojects output", runtimeName)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return mtime(candidates[i]).After(mtime(candidates[j]))
	})
	return candidates[0], nil
}

// Run finds the runtime and copies it into the install root, along with
// an adjacent debug-symbol file of the same stem when one exists.
func (inst *Installer) Run() error {
	dll, err := Find(inst.BuildRoot)
	if err != nil {
		return err
	}
	if err := inst.copy(dll); err != nil {
		return err
	}

	pdb := strings.TrimSuffix(dll, filepath.Ext(dll)) + ".pdb"
	if _, err := os.Stat(pdb); err == nil {
		if err := inst.copy(pdb); err != nil {
			return err
		}
	}
	return nil
}

func (inst *Installer) copy(src string) error {
	dst := filepath.Join(inst.InstallRoot, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		return err
	}
	out := inst.Stdout
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "install-sdl: copied %s -> %s\n", src, dst)
	return nil
}

// copyFile copies src to dst, creating intermediate directories and
// preserving the source's mode and modification time.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, time.Now(), info.ModTime())
}

func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
