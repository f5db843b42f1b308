// Package engine provides the Step() orchestrator that wires together
// parsing, resolution, and the puzzle rules into a single turn.
package engine

import (
	"github.com/mcross/shadowcircuit/engine/parser"
	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

// Session holds one playthrough: immutable definitions plus mutable state.
type Session struct {
	Defs  *world.Defs
	State *world.State
}

// New creates a session from definitions.
func New(defs *world.Defs) *Session {
	return &Session{Defs: defs, State: world.NewState(defs)}
}

// handler processes one intent and returns output lines plus the turn cost.
type handler func(g *Session, intent types.Intent) ([]string, int)

var handlers = map[string]handler{
	// Free actions: looking around never burns the night.
	"look":      (*Session).cmdLook,
	"inventory": (*Session).cmdInventory,
	"stats":     (*Session).cmdStats,
	"map":       (*Session).cmdMap,
	"hint":      (*Session).cmdHint,
	"help":      (*Session).cmdHelp,

	"go":      (*Session).cmdGo,
	"take":    (*Session).cmdTake,
	"drop":    (*Session).cmdDrop,
	"examine": (*Session).cmdExamine,
	"read":    (*Session).cmdRead,
	"open":    (*Session).cmdOpen,
	"close":   (*Session).cmdClose,
	"use":     (*Session).cmdUse,
	"combine": (*Session).cmdCombine,
	"talk":    (*Session).cmdTalk,
	"give":    (*Session).cmdGive,
	"listen":  (*Session).cmdListen,
	"smell":   (*Session).cmdSmell,
	"wait":    (*Session).cmdWait,
	"push":    (*Session).cmdPush,

	"sense":     (*Session).cmdSense,
	"mesmerize": (*Session).cmdMesmerize,
	"bite":      (*Session).cmdBite,

	"code":   (*Session).cmdEnterCode,
	"trace":  (*Session).cmdTraceSigil,
	"craft":  (*Session).cmdCraft,
	"tune":   (*Session).cmdTuneAntenna,
	"insert": (*Session).cmdInsertToken,
}

// Intro returns the opening text: title, intro passage, and the first
// room description.
func (g *Session) Intro() []string {
	var out []string
	if g.State.Game.Title != "" {
		out = append(out, "# "+g.State.Game.Title)
	}
	if g.State.Game.Intro != "" {
		out = append(out, g.State.Game.Intro)
	}
	out = append(out, g.describeRoom(g.State.Player.Location)...)
	return out
}

// Step processes one player command and returns the result. Save, load,
// and quit are front-end concerns and never reach the engine.
func (g *Session) Step(input string) types.Result {
	var result types.Result

	// 0. Game over blocks all gameplay commands.
	if g.State.Ended() {
		return types.Result{
			Output: []string{"The night is over. Load a save or start again."},
			Ended:  true,
			Ending: g.State.Ending,
		}
	}

	// 1. Parse input.
	intent := parser.Parse(input)
	if intent.Verb == "" {
		result.Output = []string{"Say again?"}
		return result
	}

	// 2. Route to the verb handler.
	h, ok := handlers[intent.Verb]
	if !ok {
		result.Output = []string{"That doesn't seem to work. Type HELP for commands."}
		return result
	}
	lines, cost := h(g, intent)
	result.Output = append(result.Output, lines...)

	// 3. Advance the clock. Dawn ends the game if no ending fired first.
	if cost > 0 && !g.State.Ended() {
		if g.State.Tick(cost) {
			g.State.Ending = endingDefeat
			result.Output = append(result.Output, defeatText()...)
		}
	} else {
		g.State.Clamp()
	}

	if g.State.Ended() {
		result.Ended = true
		result.Ending = g.State.Ending
	}
	return result
}
