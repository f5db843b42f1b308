// Package save implements JSON serialization and deserialization of game
// state. A save records only what play can change; everything else is
// rebuilt from the loaded definitions on restore.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

// ItemState is the mutable slice of one item.
type ItemState struct {
	Location string `json:"location"`
	Stuck    bool   `json:"stuck,omitempty"`
	Open     bool   `json:"open,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
	Uses     int    `json:"uses,omitempty"`
}

// NPCState is the mutable slice of one NPC.
type NPCState struct {
	Trust  int  `json:"trust,omitempty"`
	Spoken bool `json:"spoken,omitempty"`
}

// SaveData is the JSON save format.
type SaveData struct {
	Version      string               `json:"version"`
	Game         string               `json:"game"`
	Player       types.Player         `json:"player"`
	Flags        map[string]bool      `json:"flags"`
	Counters     map[string]int       `json:"counters"`
	Items        map[string]ItemState `json:"items"`
	NPCs         map[string]NPCState  `json:"npcs"`
	ClearedGates map[string][]string  `json:"cleared_gates"` // room ID → exit directions
	Ending       string               `json:"ending,omitempty"`
}

// Save serializes session state to JSON bytes.
func Save(s *world.State, defs *world.Defs) ([]byte, error) {
	data := SaveData{
		Version:      s.Game.Version,
		Game:         s.Game.Title,
		Player:       s.Player,
		Flags:        s.Flags,
		Counters:     s.Counters,
		Items:        map[string]ItemState{},
		NPCs:         map[string]NPCState{},
		ClearedGates: map[string][]string{},
		Ending:       s.Ending,
	}
	for id, it := range s.Items {
		data.Items[id] = ItemState{
			Location: it.Location,
			Stuck:    it.Stuck,
			Open:     it.Open,
			Hidden:   it.Hidden,
			Uses:     it.Uses,
		}
	}
	for id, n := range s.NPCs {
		data.NPCs[id] = NPCState{Trust: n.Trust, Spoken: n.Spoken}
	}
	// Cleared gates are exactly the exits where state and defs disagree.
	for roomID, room := range s.Rooms {
		for dir, exit := range room.Exits {
			if exit.Gate == "" && defs.Rooms[roomID].Exits[dir].Gate != "" {
				data.ClearedGates[roomID] = append(data.ClearedGates[roomID], dir)
			}
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Flags == nil {
		sd.Flags = map[string]bool{}
	}
	if sd.Counters == nil {
		sd.Counters = map[string]int{}
	}
	if sd.Items == nil {
		sd.Items = map[string]ItemState{}
	}
	if sd.NPCs == nil {
		sd.NPCs = map[string]NPCState{}
	}
	if sd.Player.Inventory == nil {
		sd.Player.Inventory = []string{}
	}
	if sd.Player.Visited == nil {
		sd.Player.Visited = map[string]bool{}
	}
	return &sd, nil
}

// Restore builds a fresh state from definitions and applies the save on
// top. It fails if the save belongs to a different game.
func Restore(defs *world.Defs, sd *SaveData) (*world.State, error) {
	if sd.Game != "" && sd.Game != defs.Game.Title {
		return nil, fmt.Errorf("save is for %q, not %q", sd.Game, defs.Game.Title)
	}
	s := world.NewState(defs)
	s.Player = sd.Player
	s.Flags = sd.Flags
	s.Counters = sd.Counters
	s.Ending = sd.Ending
	for id, is := range sd.Items {
		it, ok := s.Items[id]
		if !ok {
			continue
		}
		it.Location = is.Location
		it.Stuck = is.Stuck
		it.Open = is.Open
		it.Hidden = is.Hidden
		it.Uses = is.Uses
	}
	for id, ns := range sd.NPCs {
		n, ok := s.NPCs[id]
		if !ok {
			continue
		}
		n.Trust = ns.Trust
		n.Spoken = ns.Spoken
	}
	for roomID, dirs := range sd.ClearedGates {
		for _, dir := range dirs {
			s.ClearGate(roomID, dir)
		}
	}
	s.Clamp()
	return s, nil
}

// WriteFile writes a save to disk via a temp file and rename, so a crash
// mid-write never clobbers an existing save.
func WriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// SaveDirEnv names the environment variable that overrides where saves
// are written.
const SaveDirEnv = "SHADOWCIRCUIT_SAVE"

// DefaultDir returns the directory saves live in: SHADOWCIRCUIT_SAVE if
// set, else a dot directory under the user's home.
func DefaultDir() string {
	if dir := os.Getenv(SaveDirEnv); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".shadowcircuit", "saves")
}
