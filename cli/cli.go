// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Shadow Circuit engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcross/shadowcircuit/engine"
	"github.com/mcross/shadowcircuit/engine/save"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Session   *engine.Session
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given session.
func New(g *engine.Session) *CLI {
	return &CLI{
		Session: g,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: save.DefaultDir(),
	}
}

// Run starts the game loop: intro, then prompt → input → dispatch → output.
func (c *CLI) Run() {
	for _, line := range c.Session.Intro() {
		c.printLine(line)
	}

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands: save, load, quit never reach the engine.
		if done := c.dispatch(input); done {
			return
		}
	}
}

// dispatch routes one input line. It returns true when the game should exit.
func (c *CLI) dispatch(input string) bool {
	parts := strings.Fields(strings.ToLower(input))
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch parts[0] {
	case "quit", "q", "exit", "/quit", "/exit":
		c.printSystem("The night will wait. Goodbye.")
		return true

	case "save", "/save":
		c.cmdSave(arg)
		return false

	case "load", "restore", "/load":
		c.cmdLoad(arg)
		return false

	case "/state":
		c.cmdState()
		return false
	}

	// "again" / "g" repeats the last game command.
	if parts[0] == "again" || parts[0] == "g" {
		if c.lastCmd == "" {
			c.printLine("Nothing to repeat.")
			return false
		}
		input = c.lastCmd
	} else {
		c.lastCmd = input
	}

	result := c.Session.Step(input)
	for _, line := range result.Output {
		c.printLine(line)
	}
	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}
	data, err := save.Save(c.Session.State, c.Session.Defs)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := os.MkdirAll(c.SaveDir, 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	path := filepath.Join(c.SaveDir, name+".json")
	if err := save.WriteFile(path, data); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}
	path := filepath.Join(c.SaveDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	sd, err := save.Load(data)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	st, err := save.Restore(c.Session.Defs, sd)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.Session.State = st
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", name, st.Player.Turn))

	result := c.Session.Step("look")
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Session.State
	c.printSystem(fmt.Sprintf("Turn: %d/%d", s.Player.Turn, s.Player.MaxTurns))
	c.printSystem(fmt.Sprintf("Location: %s", s.Player.Location))
	c.printSystem(fmt.Sprintf("Inventory: %v", s.Player.Inventory))
	if len(s.Flags) > 0 {
		c.printSystem(fmt.Sprintf("Flags: %v", s.Flags))
	}
	if len(s.Counters) > 0 {
		c.printSystem(fmt.Sprintf("Counters: %v", s.Counters))
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
