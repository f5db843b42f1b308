// Shadow Circuit is a turn-limited noir text adventure set in Austin.
// The built-in game is embedded; pass a directory of Lua files to play
// alternate content.
//
// Usage: shadowcircuit [--version] [--plain] [--script <file>] [game_directory]
package main

import (
	"fmt"
	"os"

	"github.com/mcross/shadowcircuit/cli"
	"github.com/mcross/shadowcircuit/content"
	"github.com/mcross/shadowcircuit/engine"
	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/loader"
	"github.com/mcross/shadowcircuit/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var gameDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("shadowcircuit %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if gameDir == "" {
				gameDir = args[i]
			}
		}
	}

	// Load game content: embedded by default, a directory if given.
	var defs *world.Defs
	var err error
	if gameDir != "" {
		defs, err = loader.LoadDir(gameDir)
	} else {
		defs, err = loader.Load(content.Files)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	g := engine.New(defs)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(g)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(g)
		c.Run()
		return
	}

	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
