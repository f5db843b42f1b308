// Package types defines the shared data structures for the Shadow Circuit
// engine. This package contains only type definitions — no logic, no methods.
package types

// Intent is the normalized form of a player command.
type Intent struct {
	Verb   string
	Object string
	Prep   string
	Target string
}

// Exit is one edge of the room graph. A non-empty Gate names the barrier
// that must be cleared before the exit can be traversed.
type Exit struct {
	To   string
	Gate string
}

// Room is a location in the world.
type Room struct {
	ID       string
	Name     string
	Desc     string
	Exits    map[string]Exit
	Features []string

	// Per-room sense text. Empty fields fall back to generic responses.
	Listen string
	Smell  string
	Sense  string
}

// Item locations that are not room IDs.
const (
	LocInventory = "inventory"
	LocNowhere   = "nowhere"
)

// Item is an object the player can interact with.
type Item struct {
	ID       string
	Name     string
	Desc     string
	Text     string // readable text, "" if the item has nothing to read
	Portable bool
	Location string
	Stuck    bool
	Open     bool
	Hidden   bool
	Uses     int
}

// NPC is a character the player can talk to.
type NPC struct {
	ID     string
	Name   string
	Desc   string
	Home   string
	Trust  int
	Spoken bool
	Topics map[string]string
}

// Player is the protagonist's mutable record.
type Player struct {
	Turn      int
	MaxTurns  int
	Health    int
	Will      int
	Hunger    int
	Location  string
	Inventory []string
	Visited   map[string]bool
}

// GameDef holds game-wide metadata.
type GameDef struct {
	Title    string
	Author   string
	Version  string
	Start    string
	Intro    string
	MaxTurns int
}

// Result is what one processed command produces.
type Result struct {
	Output []string
	Ended  bool
	Ending string
}
