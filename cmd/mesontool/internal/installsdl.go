package internal

import (
	"github.com/spf13/cobra"

	"github.com/iortcw/mesontool/internal/env"
	"github.com/iortcw/mesontool/internal/sdlruntime"
)

var installSDLCmd = &cobra.Command{
	Use:   "install-sdl",
	Short: "Copy the SDL runtime from the build tree into the install tree",
	Long: `Install-sdl runs as a Meson install script: it reads MESON_BUILD_ROOT
and MESON_INSTALL_DESTDIR_PREFIX, finds the freshest SDL runtime built
under subprojects, and copies it (plus its debug symbols when present)
into the install prefix.`,
	Args: cobra.NoArgs,
	RunE: runInstallSDL,
}

func init() {
	rootCmd.AddCommand(installSDLCmd)
}

func runInstallSDL(cmd *cobra.Command, args []string) error {
	buildRoot, err := env.BuildRoot()
	if err != nil {
		return err
	}
	installRoot, err := env.InstallRoot()
	if err != nil {
		return err
	}
	inst := &sdlruntime.Installer{
		BuildRoot:   buildRoot,
		InstallRoot: installRoot,
		Stdout:      cmd.OutOrStdout(),
	}
	return inst.Run()
}
