package makefile

import "testing"

func TestExpandVariableReferences(t *testing.T) {
	vars := map[string]string{
		"A": "hello",
		"B": "$(A) world",
	}
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"$(A)", "hello"},
		{"$(B)", "hello world"},
		{"$(MISSING)", ""},
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{`"quoted"`, "quoted"},
	} {
		if got := Expand(tt.in, vars); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandIdempotent(t *testing.T) {
	vars := map[string]string{
		"OBJ":  "$(DIR)/a.o $(DIR)/b.o",
		"DIR":  "build/client",
		"NAME": "sdl",
	}
	for _, in := range []string{
		"$(OBJ)",
		"$(findstring $(NAME),sdl x11)",
		"literal",
	} {
		once := Expand(in, vars)
		if twice := Expand(once, vars); twice != once {
			t.Errorf("Expand not idempotent on %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestFindstringLiteralForm(t *testing.T) {
	vars := map[string]string{"NEEDLE": "arm64"}
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"$(findstring arm64,x86 x86_64 arm64)", "arm64"},
		// Substring fallback: the needle need not be a whole word.
		{"$(findstring 86,x86 x86_64)", "86"},
		{"$(findstring mips,x86 x86_64)", ""},
		// The literal-form needle is expanded before matching.
		{"$(findstring $(NEEDLE)-be,arm64-be mips)", "arm64-be"},
	} {
		if got := Expand(tt.in, vars); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindstringNestedFormUsesRawValue(t *testing.T) {
	// The nested form looks the needle variable up directly; it must
	// not be expanded first.
	vars := map[string]string{
		"ARCH":  "x86_64",
		"ALIAS": "$(ARCH)",
	}
	if got := Expand("$(findstring $(ARCH),x86_64 arm64)", vars); got != "x86_64" {
		t.Errorf("nested findstring = %q, want %q", got, "x86_64")
	}
	if got := Expand("$(findstring $(ALIAS),x86_64 arm64)", vars); got != "" {
		t.Errorf("nested findstring on alias = %q, want empty: raw value $(ARCH) is not in the haystack", got)
	}
}

func TestFindstringEmptyNeedle(t *testing.T) {
	vars := map[string]string{"EMPTY": ""}
	for _, in := range []string{
		"$(findstring $(EMPTY),anything at all)",
		"$(findstring $(UNSET),anything at all)",
	} {
		if got := Expand(in, vars); got != "" {
			t.Errorf("Expand(%q) = %q, want empty", in, got)
		}
	}
}

func TestExpandTraceReportsCapExhaustion(t *testing.T) {
	grows := map[string]string{"X": "$(X)x"}
	if _, stable := ExpandTrace("$(X)", grows); stable {
		t.Error("ExpandTrace reported a fixed point for a self-growing definition")
	}
	if _, stable := ExpandTrace("$(A) $(B)", map[string]string{"A": "a", "B": "b"}); !stable {
		t.Error("ExpandTrace did not reach a fixed point on a finite definition")
	}
}

func TestExpandStripsOneQuoteLayer(t *testing.T) {
	if got := Expand(`""double""`, nil); got != `"double"` {
		t.Errorf("Expand stripped more than one quote layer: got %q", got)
	}
}
