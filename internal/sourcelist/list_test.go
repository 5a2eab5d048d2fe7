package sourcelist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iortcw/mesontool/internal/makefile"
)

const testMakefile = `Q3OBJ = \
  $(B)/client/cl_main.o \
  $(B)/qcommon/md4.o

B = build/mp

ifeq ($(USE_CODEC_VORBIS),1)
Q3OBJ += $(B)/client/vorbis/mdct.o
endif

Q3DOBJ = $(B)/ded/sv_main.o
`

func writeTestTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	writeTestTree(t, root,
		"MP/code/client/cl_main.c",
		"MP/code/qcommon/md4.c",
		"MP/code/libvorbis-1.3.6/lib/mdct.c",
	)
	if err := os.WriteFile(filepath.Join(root, "MP", "Makefile"), []byte(testMakefile), 0o644); err != nil {
		t.Fatalf("write makefile: %v", err)
	}

	got, err := List(root, "MP", "Q3OBJ", map[string]string{"USE_CODEC_VORBIS": "1"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{
		"MP/code/client/cl_main.c",
		"MP/code/qcommon/md4.c",
		"MP/code/libvorbis-1.3.6/lib/mdct.c",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestListFailFast(t *testing.T) {
	root := t.TempDir()
	// cl_main.c resolves, md4.c is missing: the listing must fail as a
	// whole and name the bad token.
	writeTestTree(t, root, "MP/code/client/cl_main.c")
	if err := os.WriteFile(filepath.Join(root, "MP", "Makefile"), []byte(testMakefile), 0o644); err != nil {
		t.Fatalf("write makefile: %v", err)
	}

	sources, err := List(root, "MP", "Q3OBJ", map[string]string{"USE_CODEC_VORBIS": "0"})
	if sources != nil {
		t.Errorf("List returned partial results: %v", sources)
	}
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *ResolutionError", err)
	}
	if rerr.Token != "build/mp/qcommon/md4.o" || rerr.Group != "Q3OBJ" || rerr.Game != "MP" {
		t.Errorf("ResolutionError = %+v, want token/group/game context", rerr)
	}
}

func TestListRejectsBadGroupBeforeReading(t *testing.T) {
	// No makefile exists; the allow-list failure must win anyway.
	_, err := List(t.TempDir(), "MP", "NOT_A_GROUP", nil)
	var gerr *makefile.UnknownGroupError
	if !errors.As(err, &gerr) {
		t.Fatalf("err = %v, want *makefile.UnknownGroupError", err)
	}
}

func TestListMissingMakefile(t *testing.T) {
	_, err := List(t.TempDir(), "MP", "Q3OBJ", nil)
	if err == nil {
		t.Fatal("List succeeded without a makefile")
	}
}

func TestResolutionErrorMessage(t *testing.T) {
	err := &ResolutionError{Token: "a/client/x.o", Group: "Q3OBJ", Game: "SP"}
	want := "failed to map object 'a/client/x.o' in group Q3OBJ (SP)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
