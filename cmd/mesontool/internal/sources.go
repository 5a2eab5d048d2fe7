package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iortcw/mesontool/internal/config"
	"github.com/iortcw/mesontool/internal/sourcelist"
)

var (
	sourcesCfg  config.Config
	sourcesRoot string
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the source files behind one Makefile object group",
	Long: `Sources interprets the object lists of <root>/<game>/Makefile for one
build variant and prints the matching source files, one per line,
relative to the project root.`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

func init() {
	f := sourcesCmd.Flags()
	f.StringVar(&sourcesCfg.Game, "game", "", "game tree to read (SP or MP)")
	f.StringVar(&sourcesCfg.Group, "group", "", "object group to extract (e.g. Q3OBJ)")
	f.StringVar(&sourcesRoot, "root", ".", "project root containing the game trees")
	f.StringVar(&sourcesCfg.Arch, "arch", "x86_64", "target architecture")
	f.StringVar(&sourcesCfg.Platform, "platform", "linux", "target platform")
	f.StringVar(&sourcesCfg.MinGW, "mingw", "0", "cross-compiling with MinGW")
	f.StringVar(&sourcesCfg.BaseGame, "basegame", "main", "base game data directory")

	f.StringVar(&sourcesCfg.UseBloom, "use-bloom", "1", "bloom postprocessing")
	f.StringVar(&sourcesCfg.UseRendererDlopen, "use-renderer-dlopen", "1", "load renderers as shared libraries")
	f.StringVar(&sourcesCfg.UseInternalJPEG, "use-internal-jpeg", "0", "bundled libjpeg")
	f.StringVar(&sourcesCfg.UseFreetype, "use-freetype", "1", "FreeType font rendering")
	f.StringVar(&sourcesCfg.UseInternalFreetype, "use-internal-freetype", "0", "bundled FreeType")
	f.StringVar(&sourcesCfg.UseInternalOpus, "use-internal-opus", "1", "bundled Opus")
	f.StringVar(&sourcesCfg.UseInternalOgg, "use-internal-ogg", "1", "bundled libogg")
	f.StringVar(&sourcesCfg.UseInternalVorbis, "use-internal-vorbis", "1", "bundled libvorbis")
	f.StringVar(&sourcesCfg.UseInternalZlib, "use-internal-zlib", "0", "bundled zlib")
	f.StringVar(&sourcesCfg.UseCodecVorbis, "use-codec-vorbis", "1", "Vorbis audio codec")
	f.StringVar(&sourcesCfg.UseCodecOpus, "use-codec-opus", "1", "Opus audio codec")
	f.StringVar(&sourcesCfg.UseVOIP, "use-voip", "1", "in-game VoIP")
	f.StringVar(&sourcesCfg.UseMumble, "use-mumble", "1", "Mumble positional audio")
	f.StringVar(&sourcesCfg.UseAntiWallhack, "use-antiwallhack", "0", "server-side anti-wallhack")
	f.StringVar(&sourcesCfg.HaveVMCompiled, "have-vm-compiled", "1", "QVM JIT available for the target")

	sourcesCmd.MarkFlagRequired("game")
	sourcesCmd.MarkFlagRequired("group")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	if err := sourcesCfg.Validate(); err != nil {
		return err
	}
	sources, err := sourcelist.List(sourcesRoot, sourcesCfg.Game, sourcesCfg.Group, sourcesCfg.Vars())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sources, "\n"))
	return nil
}
