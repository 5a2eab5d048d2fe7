// Package config turns one build variant's flags into the initial
// variable store the Makefile conditionals branch on.
package config

import "fmt"

// Config captures one build variant of the legacy Makefiles: which game
// tree to read, which object group to extract, and the feature flags
// the conditionals test. Toggle fields hold the legacy string literals
// as given on the command line; Vars normalizes them.
type Config struct {
	Game     string
	Group    string
	Arch     string
	Platform string
	BaseGame string
	MinGW    string

	UseBloom            string
	UseRendererDlopen   string
	UseInternalJPEG     string
	UseFreetype         string
	UseInternalFreetype string
	UseInternalOpus     string
	UseInternalOgg      string
	UseInternalVorbis   string
	UseInternalZlib     string
	UseCodecVorbis      string
	UseCodecOpus        string
	UseVOIP             string
	UseMumble           string
	UseAntiWallhack     string
	HaveVMCompiled      string
}

// Validate checks the fields the Makefiles cannot tolerate being wrong.
func (c *Config) Validate() error {
	if c.Game != "SP" && c.Game != "MP" {
		return fmt.Errorf("invalid game %q: must be SP or MP", c.Game)
	}
	return nil
}

// Bool01 normalizes a legacy truthy literal to "1" or "0". Empty, "0",
// "false", "False" and "off" are false; anything else is true.
func Bool01(v string) string {
	switch v {
	case "", "0", "false", "False", "off":
		return "0"
	}
	return "1"
}

// Vars builds the initial variable store for the interpreter: the plain
// flags plus the derived codec requirements the Makefiles expect the
// caller to have computed.
func (c *Config) Vars() map[string]string {
	vars := map[string]string{
		"ARCH":     c.Arch,
		"PLATFORM": c.Platform,
		"BASEGAME": c.BaseGame,

		"USE_BLOOM":             Bool01(c.UseBloom),
		"USE_RENDERER_DLOPEN":   Bool01(c.UseRendererDlopen),
		"USE_INTERNAL_JPEG":     Bool01(c.UseInternalJPEG),
		"USE_FREETYPE":          Bool01(c.UseFreetype),
		"USE_INTERNAL_FREETYPE": Bool01(c.UseInternalFreetype),
		"USE_INTERNAL_OPUS":     Bool01(c.UseInternalOpus),
		"USE_INTERNAL_OGG":      Bool01(c.UseInternalOgg),
		"USE_INTERNAL_VORBIS":   Bool01(c.UseInternalVorbis),
		"USE_INTERNAL_ZLIB":     Bool01(c.UseInternalZlib),
		"USE_CODEC_VORBIS":      Bool01(c.UseCodecVorbis),
		"USE_CODEC_OPUS":        Bool01(c.UseCodecOpus),
		"USE_VOIP":              Bool01(c.UseVOIP),
		"USE_MUMBLE":            Bool01(c.UseMumble),
		"USE_ANTIWALLHACK":      Bool01(c.UseAntiWallhack),
	}

	// MINGW gates ifdef blocks, so false must mean undefined, not "0".
	if Bool01(c.MinGW) == "1" {
		vars["MINGW"] = "1"
	} else {
		vars["MINGW"] = ""
	}

	// The Makefiles compare HAVE_VM_COMPILED against true/false words.
	if Bool01(c.HaveVMCompiled) == "1" {
		vars["HAVE_VM_COMPILED"] = "true"
	} else {
		vars["HAVE_VM_COMPILED"] = "false"
	}

	needOpus := vars["USE_VOIP"] == "1" || vars["USE_CODEC_OPUS"] == "1"
	needOgg := needOpus || vars["USE_CODEC_VORBIS"] == "1"
	vars["NEED_OPUS"] = bool01(needOpus)
	vars["NEED_OGG"] = bool01(needOgg)

	return vars
}

func bool01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
