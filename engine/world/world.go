// Package world holds the session-owned mutable game state. A State is
// deep-copied from immutable Defs at session start, so save/restore and
// tests never share registries between sessions.
package world

import (
	"sort"

	"github.com/mcross/shadowcircuit/types"
)

// Resource bounds. Every mutation is followed by a clamp to these ranges.
const (
	MaxHealth = 3
	MaxWill   = 3
	MaxHunger = 5
)

// Defs holds the immutable game definitions produced by the loader.
type Defs struct {
	Game      types.GameDef
	Rooms     map[string]types.Room
	Items     map[string]types.Item
	NPCs      map[string]types.NPC
	Features  map[string]string   // feature ID → description
	Gates     map[string]string   // gate ID → blocked-exit message
	Hints     map[string][]string // room ID → escalating hint list
	ItemOrder []string            // definition order, for stable display
	NPCOrder  []string
}

// State is the complete mutable state of one game session.
type State struct {
	Game     types.GameDef
	Rooms    map[string]*types.Room
	Items    map[string]*types.Item
	NPCs     map[string]*types.NPC
	Features map[string]string
	Gates    map[string]string
	Hints    map[string][]string

	Player   types.Player
	Flags    map[string]bool
	Counters map[string]int
	Ending   string // "" while the session is active

	itemOrder []string
	npcOrder  []string
}

// NewState creates a fresh session state from definitions. Registries are
// deep-copied; the Player record starts at the game's opening values.
func NewState(defs *Defs) *State {
	s := &State{
		Game:     defs.Game,
		Rooms:    make(map[string]*types.Room, len(defs.Rooms)),
		Items:    make(map[string]*types.Item, len(defs.Items)),
		NPCs:     make(map[string]*types.NPC, len(defs.NPCs)),
		Features: make(map[string]string, len(defs.Features)),
		Gates:    defs.Gates,
		Hints:    defs.Hints,
		Player: types.Player{
			MaxTurns:  defs.Game.MaxTurns,
			Health:    MaxHealth,
			Will:      2,
			Hunger:    1,
			Location:  defs.Game.Start,
			Inventory: []string{},
			Visited:   map[string]bool{defs.Game.Start: true},
		},
		Flags:     map[string]bool{},
		Counters:  map[string]int{},
		itemOrder: defs.ItemOrder,
		npcOrder:  defs.NPCOrder,
	}
	for id, room := range defs.Rooms {
		r := room
		r.Exits = make(map[string]types.Exit, len(room.Exits))
		for dir, exit := range room.Exits {
			r.Exits[dir] = exit
		}
		s.Rooms[id] = &r
	}
	for id, item := range defs.Items {
		it := item
		s.Items[id] = &it
	}
	// Content may place items directly in the starting inventory.
	for _, id := range s.itemOrder {
		if s.Items[id].Location == types.LocInventory {
			s.Player.Inventory = append(s.Player.Inventory, id)
		}
	}
	for id, npc := range defs.NPCs {
		n := npc
		n.Topics = make(map[string]string, len(npc.Topics))
		for k, v := range npc.Topics {
			n.Topics[k] = v
		}
		s.NPCs[id] = &n
	}
	for id, desc := range defs.Features {
		s.Features[id] = desc
	}
	return s
}

// Ended reports whether the session has reached a terminal ending.
func (s *State) Ended() bool {
	return s.Ending != ""
}

// CurrentRoom returns the room the player is in.
func (s *State) CurrentRoom() *types.Room {
	return s.Rooms[s.Player.Location]
}

// RoomItems returns visible item IDs in a room, in definition order.
func (s *State) RoomItems(roomID string) []string {
	var ids []string
	for _, id := range s.itemOrder {
		it := s.Items[id]
		if it.Location == roomID && !it.Hidden {
			ids = append(ids, id)
		}
	}
	return ids
}

// RoomNPCs returns NPC IDs present in a room, in definition order.
func (s *State) RoomNPCs(roomID string) []string {
	var ids []string
	for _, id := range s.npcOrder {
		if s.NPCs[id].Home == roomID {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasItem reports whether the player carries the item.
func (s *State) HasItem(itemID string) bool {
	for _, id := range s.Player.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// Acquire moves an item into the player's inventory. The location field
// and the inventory sequence are updated together so they never disagree.
func (s *State) Acquire(itemID string) {
	it, ok := s.Items[itemID]
	if !ok {
		return
	}
	it.Location = types.LocInventory
	it.Hidden = false
	if !s.HasItem(itemID) {
		s.Player.Inventory = append(s.Player.Inventory, itemID)
	}
}

// Drop moves a carried item into a room.
func (s *State) Drop(itemID, roomID string) {
	it, ok := s.Items[itemID]
	if !ok {
		return
	}
	it.Location = roomID
	s.removeFromInventory(itemID)
}

// Consume relocates an item to nowhere. Items are never destroyed.
func (s *State) Consume(itemID string) {
	it, ok := s.Items[itemID]
	if !ok {
		return
	}
	it.Location = types.LocNowhere
	s.removeFromInventory(itemID)
}

func (s *State) removeFromInventory(itemID string) {
	for i, id := range s.Player.Inventory {
		if id == itemID {
			s.Player.Inventory = append(s.Player.Inventory[:i], s.Player.Inventory[i+1:]...)
			return
		}
	}
}

// Flag returns a named flag. Unset flags are false.
func (s *State) Flag(name string) bool {
	return s.Flags[name]
}

// SetFlag sets a named flag.
func (s *State) SetFlag(name string, v bool) {
	s.Flags[name] = v
}

// Counter returns a named counter. Unset counters are 0.
func (s *State) Counter(name string) int {
	return s.Counters[name]
}

// AddCounter adjusts a named counter by delta and returns the new value.
func (s *State) AddCounter(name string, delta int) int {
	s.Counters[name] += delta
	return s.Counters[name]
}

// Visit records the player entering a room and moves them there.
func (s *State) Visit(roomID string) {
	s.Player.Location = roomID
	s.Player.Visited[roomID] = true
}

// VisitedRooms returns the names of visited rooms, sorted.
func (s *State) VisitedRooms() []string {
	var names []string
	for id := range s.Player.Visited {
		if room, ok := s.Rooms[id]; ok {
			names = append(names, room.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ClearGate removes the gate from a room's exit. Clearing is permanent:
// nothing ever writes a gate back.
func (s *State) ClearGate(roomID, dir string) {
	room, ok := s.Rooms[roomID]
	if !ok {
		return
	}
	exit, ok := room.Exits[dir]
	if !ok {
		return
	}
	exit.Gate = ""
	room.Exits[dir] = exit
}

// Clamp forces the three resources back into their valid ranges.
func (s *State) Clamp() {
	s.Player.Health = clamp(s.Player.Health, 0, MaxHealth)
	s.Player.Will = clamp(s.Player.Will, 0, MaxWill)
	s.Player.Hunger = clamp(s.Player.Hunger, 0, MaxHunger)
}

// Tick advances the turn clock by cost and clamps resources. It reports
// whether the turn budget is now exhausted.
func (s *State) Tick(cost int) bool {
	s.Player.Turn += cost
	s.Clamp()
	return s.Player.Turn >= s.Player.MaxTurns
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
