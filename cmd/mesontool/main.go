package main

import "github.com/iortcw/mesontool/cmd/mesontool/internal"

func main() {
	internal.Execute()
}
