package resolve

import "path"

// A probe is one candidate location for a source file, as a directory
// relative to <game>/code plus the extension to try.
type probe struct {
	dir string
	ext string
}

// A prefixRule redirects tokens whose stem begins with a given prefix
// (bundled codec trees, gamecode shared via bg_ files) to its own
// probes before, or instead of, the category's.
type prefixRule struct {
	prefix    string
	strip     bool // drop the prefix from the stem before probing
	exclusive bool // no fallthrough to the category probes
	probes    []probe
}

// A category binds one marker substring of an object token to an
// ordered list of candidate locations. Categories are tried in order;
// the first marker found in the token wins.
type category struct {
	marker   string
	prefixes []prefixRule
	probes   []probe
}

// categories is the full search policy. Order matters twice: between
// categories (/rend2/glsl/ must precede /rend2/, /cgame/ must precede
// /game/) and within each probe list (first existing file wins).
var categories = []category{
	{
		marker: "/rend2/glsl/",
		probes: []probe{{"rend2/glsl", ".glsl"}},
	},
	{
		marker: "/splines/",
		probes: []probe{{"splines", ".cpp"}, {"splines", ".c"}},
	},
	{
		marker: "/renderer/",
		probes: rendererProbes(),
	},
	{
		marker: "/rend2/",
		probes: []probe{{"rend2", ".c"}},
	},
	{
		marker: "/client/",
		prefixes: []prefixRule{
			{
				prefix: "vorbis/", strip: true, exclusive: true,
				probes: []probe{{"libvorbis-1.3.6/lib", ".c"}},
			},
			{
				prefix: "opus/", strip: true, exclusive: true,
				probes: []probe{
					{"opus-1.2.1/src", ".c"},
					{"opus-1.2.1/celt", ".c"},
					{"opus-1.2.1/silk", ".c"},
					{"opus-1.2.1/silk/float", ".c"},
					{"opus-1.2.1/silk/x86", ".c"},
				},
			},
		},
		probes: []probe{
			{"asm", ".c"}, {"asm", ".s"}, {"asm", ".asm"},
			{"client", ".c"},
			{"server", ".c"},
			{"qcommon", ".c"},
			{"botlib", ".c"},
			{"libogg-1.3.3/src", ".c"},
			{"opusfile-0.9/src", ".c"},
			{"minizip", ".c"},
			{"zlib-1.2.11", ".c"},
			{"sdl", ".c"},
			{"sys", ".c"}, {"sys", ".m"}, {"sys", ".rc"},
		},
	},
	{
		marker: "/ded/",
		probes: []probe{
			{"asm", ".c"}, {"asm", ".s"}, {"asm", ".asm"},
			{"server", ".c"},
			{"qcommon", ".c"},
			{"minizip", ".c"},
			{"zlib-1.2.11", ".c"},
			{"botlib", ".c"},
			{"sys", ".c"}, {"sys", ".m"}, {"sys", ".rc"},
			{"null", ".c"},
		},
	},
	{
		marker: "/cgame/",
		prefixes: []prefixRule{
			{prefix: "bg_", probes: []probe{{"game", ".c"}}},
		},
		probes: []probe{{"cgame", ".c"}},
	},
	{
		marker: "/game/",
		probes: []probe{{"game", ".c"}},
	},
	{
		marker: "/ui/",
		prefixes: []prefixRule{
			{prefix: "bg_", probes: []probe{{"game", ".c"}}},
		},
		probes: []probe{{"ui", ".c"}},
	},
	{
		marker: "/qcommon/",
		probes: []probe{{"qcommon", ".c"}},
	},
}

// freetypeSubdirs lists the bundled FreeType source layout probed for
// renderer objects when the internal FreeType build is enabled.
var freetypeSubdirs = []string{
	"autofit", "base", "bdf", "bzip2", "cache", "cff", "cid",
	"gxvalid", "gzip", "lzw", "otvalid", "pcf", "pfr", "psaux",
	"pshinter", "psnames", "raster", "sfnt", "smooth", "tools",
	"truetype", "type1", "type42", "winfonts",
}

func rendererProbes() []probe {
	probes := []probe{
		{"qcommon", ".c"},
		{"sdl", ".c"},
		{"jpeg-8c", ".c"},
		{"renderer", ".c"},
	}
	for _, sub := range freetypeSubdirs {
		probes = append(probes, probe{path.Join("freetype-2.9/src", sub), ".c"})
	}
	return probes
}
