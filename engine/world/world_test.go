package world

import (
	"testing"

	"github.com/mcross/shadowcircuit/types"
)

func testDefs() *Defs {
	return &Defs{
		Game: types.GameDef{Title: "Test", Start: "A", MaxTurns: 10},
		Rooms: map[string]types.Room{
			"A": {ID: "A", Name: "Alley", Exits: map[string]types.Exit{
				"north": {To: "B"},
				"south": {To: "C", Gate: "sealed_door"},
			}},
			"B": {ID: "B", Name: "Bar", Exits: map[string]types.Exit{"south": {To: "A"}}},
			"C": {ID: "C", Name: "Cellar"},
		},
		Items: map[string]types.Item{
			"coin": {ID: "coin", Name: "tarnished coin", Portable: true, Location: "A"},
			"note": {ID: "note", Name: "folded note", Portable: true, Location: "A", Hidden: true},
			"vat":  {ID: "vat", Name: "copper vat", Location: "B"},
		},
		NPCs: map[string]types.NPC{
			"rook": {ID: "rook", Name: "Rook", Home: "B"},
		},
		ItemOrder: []string{"coin", "note", "vat"},
		NPCOrder:  []string{"rook"},
	}
}

func TestNewStateIsolation(t *testing.T) {
	defs := testDefs()
	s1 := NewState(defs)
	s2 := NewState(defs)

	s1.Acquire("coin")
	s1.ClearGate("A", "south")
	s1.NPCs["rook"].Trust = 2

	if s2.Items["coin"].Location != "A" {
		t.Errorf("coin moved in second session: %q", s2.Items["coin"].Location)
	}
	if s2.Rooms["A"].Exits["south"].Gate != "sealed_door" {
		t.Error("gate cleared in second session")
	}
	if s2.NPCs["rook"].Trust != 0 {
		t.Errorf("trust leaked into second session: %d", s2.NPCs["rook"].Trust)
	}
	if defs.Items["coin"].Location != "A" {
		t.Error("defs mutated by session")
	}
}

func TestNewStateOpeningValues(t *testing.T) {
	s := NewState(testDefs())
	if s.Player.Location != "A" {
		t.Errorf("start location = %q, want A", s.Player.Location)
	}
	if !s.Player.Visited["A"] {
		t.Error("start room not marked visited")
	}
	if s.Player.Health != 3 || s.Player.Will != 2 || s.Player.Hunger != 1 {
		t.Errorf("opening resources = %d/%d/%d, want 3/2/1",
			s.Player.Health, s.Player.Will, s.Player.Hunger)
	}
	if s.Player.MaxTurns != 10 {
		t.Errorf("MaxTurns = %d, want 10", s.Player.MaxTurns)
	}
}

func TestItemMovementInvariant(t *testing.T) {
	s := NewState(testDefs())

	s.Acquire("coin")
	if !s.HasItem("coin") {
		t.Fatal("coin not in inventory after Acquire")
	}
	if got := s.Items["coin"].Location; got != types.LocInventory {
		t.Errorf("coin location = %q, want inventory", got)
	}

	// Acquire is idempotent.
	s.Acquire("coin")
	if n := len(s.Player.Inventory); n != 1 {
		t.Errorf("inventory has %d entries after double Acquire, want 1", n)
	}

	s.Drop("coin", "B")
	if s.HasItem("coin") {
		t.Error("coin still in inventory after Drop")
	}
	if got := s.Items["coin"].Location; got != "B" {
		t.Errorf("coin location = %q, want B", got)
	}

	s.Acquire("coin")
	s.Consume("coin")
	if s.HasItem("coin") {
		t.Error("coin still in inventory after Consume")
	}
	if got := s.Items["coin"].Location; got != types.LocNowhere {
		t.Errorf("coin location = %q, want nowhere", got)
	}
}

func TestRoomItemsHidesHiddenItems(t *testing.T) {
	s := NewState(testDefs())
	got := s.RoomItems("A")
	if len(got) != 1 || got[0] != "coin" {
		t.Fatalf("RoomItems(A) = %v, want [coin]", got)
	}

	// Acquiring a hidden item reveals it for good.
	s.Acquire("note")
	s.Drop("note", "A")
	got = s.RoomItems("A")
	if len(got) != 2 {
		t.Fatalf("RoomItems(A) after reveal = %v, want two items", got)
	}
}

func TestTickClampsAndExpires(t *testing.T) {
	s := NewState(testDefs())
	s.Player.Health = 9
	s.Player.Will = -2
	s.Player.Hunger = 7

	if s.Tick(1) {
		t.Error("Tick reported expiry on turn 1")
	}
	if s.Player.Health != MaxHealth || s.Player.Will != 0 || s.Player.Hunger != MaxHunger {
		t.Errorf("resources after clamp = %d/%d/%d, want 3/0/5",
			s.Player.Health, s.Player.Will, s.Player.Hunger)
	}

	s.Player.Turn = 9
	if !s.Tick(1) {
		t.Error("Tick did not report expiry at MaxTurns")
	}
}

func TestClearGateIsPermanent(t *testing.T) {
	s := NewState(testDefs())
	s.ClearGate("A", "south")
	if gate := s.Rooms["A"].Exits["south"].Gate; gate != "" {
		t.Errorf("gate = %q after ClearGate, want empty", gate)
	}
	// Unknown room or direction is a no-op, not a panic.
	s.ClearGate("Z", "south")
	s.ClearGate("A", "west")
}

func TestFlagsAndCounters(t *testing.T) {
	s := NewState(testDefs())
	if s.Flag("sigil_traced") {
		t.Error("unset flag reads true")
	}
	s.SetFlag("sigil_traced", true)
	if !s.Flag("sigil_traced") {
		t.Error("flag not set")
	}
	if got := s.AddCounter("tokens", 2); got != 2 {
		t.Errorf("AddCounter = %d, want 2", got)
	}
	if got := s.Counter("tokens"); got != 2 {
		t.Errorf("Counter = %d, want 2", got)
	}
}

func TestNewStateSeedsStartingInventory(t *testing.T) {
	defs := testDefs()
	heirloom := types.Item{ID: "ring", Name: "family ring", Portable: true, Location: types.LocInventory}
	defs.Items["ring"] = heirloom
	defs.ItemOrder = append(defs.ItemOrder, "ring")

	s := NewState(defs)
	if !s.HasItem("ring") {
		t.Fatalf("inventory = %v, want starting item carried", s.Player.Inventory)
	}
	if s.Items["ring"].Location != types.LocInventory {
		t.Errorf("ring location = %q", s.Items["ring"].Location)
	}
	// Location and inventory stay in sync through a drop.
	s.Drop("ring", "A")
	if s.HasItem("ring") || s.Items["ring"].Location != "A" {
		t.Errorf("after drop: inventory=%v location=%q", s.Player.Inventory, s.Items["ring"].Location)
	}
}
