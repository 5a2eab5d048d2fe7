// Package env reads the directories Meson exports to install scripts.
package env

import (
	"fmt"
	"os"
)

// BuildRoot returns the Meson build root, from MESON_BUILD_ROOT.
func BuildRoot() (string, error) {
	return required("MESON_BUILD_ROOT")
}

// InstallRoot returns the effective install prefix with DESTDIR applied,
// from MESON_INSTALL_DESTDIR_PREFIX.
func InstallRoot() (string, error) {
	return required("MESON_INSTALL_DESTDIR_PREFIX")
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("missing %s in environment", key)
	}
	return v, nil
}
