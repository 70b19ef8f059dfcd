// Command stylize renders lightweight markup as styled text on the console,
// as HTML, or reports the height the text needs at a given width.
//
//	stylize README.md
//	echo "**bold** and _italic_" | stylize --format html
//	stylize --format height --width 320 notes.md
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
