package loader

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func newTestVM() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	return L
}

func TestLoad_MinimalGame(t *testing.T) {
	defs, err := LoadDir("testdata/minimal")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if defs.Game.Title != "Minimal Test Game" {
		t.Errorf("Title = %q, want %q", defs.Game.Title, "Minimal Test Game")
	}
	if defs.Game.Start != "alley" {
		t.Errorf("Start = %q, want %q", defs.Game.Start, "alley")
	}
	if defs.Game.MaxTurns != 10 {
		t.Errorf("MaxTurns = %d, want 10", defs.Game.MaxTurns)
	}
	if _, ok := defs.Rooms["alley"]; !ok {
		t.Error("room 'alley' not found")
	}
	if defs.Rooms["alley"].Desc != "A narrow alley." {
		t.Errorf("alley description = %q", defs.Rooms["alley"].Desc)
	}
}

func TestLoad_FullGame(t *testing.T) {
	defs, err := LoadDir("testdata/full")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Game metadata.
	if defs.Game.Title != "Full Test Game" {
		t.Errorf("Title = %q", defs.Game.Title)
	}
	if defs.Game.Author != "Tester" {
		t.Errorf("Author = %q", defs.Game.Author)
	}
	if defs.Game.Intro != "It is late." {
		t.Errorf("Intro = %q", defs.Game.Intro)
	}

	// Rooms.
	if len(defs.Rooms) != 3 {
		t.Errorf("expected 3 rooms, got %d", len(defs.Rooms))
	}
	bar := defs.Rooms["bar"]
	if bar.Name != "Dive Bar" {
		t.Errorf("bar name = %q", bar.Name)
	}
	if bar.Exits["north"].To != "street" {
		t.Errorf("bar north exit = %q", bar.Exits["north"].To)
	}
	if bar.Exits["north"].Gate != "" {
		t.Errorf("bar north exit gate = %q, want none", bar.Exits["north"].Gate)
	}
	if bar.Listen != "The jukebox hums." {
		t.Errorf("bar listen = %q", bar.Listen)
	}

	// Gated exit.
	down := bar.Exits["down"]
	if down.To != "cellar" || down.Gate != "cellar_door" {
		t.Errorf("bar down exit = %+v, want {cellar cellar_door}", down)
	}

	// Features and gates.
	if len(bar.Features) != 1 || bar.Features[0] != "jukebox" {
		t.Errorf("bar features = %v", bar.Features)
	}
	if !strings.Contains(defs.Features["jukebox"], "jukebox") {
		t.Errorf("jukebox feature = %q", defs.Features["jukebox"])
	}
	if defs.Gates["cellar_door"] != "The cellar door is padlocked shut." {
		t.Errorf("cellar_door gate = %q", defs.Gates["cellar_door"])
	}

	// Items.
	crowbar, ok := defs.Items["crowbar"]
	if !ok {
		t.Fatal("item 'crowbar' not found")
	}
	if !crowbar.Portable {
		t.Error("crowbar should default to portable")
	}
	if crowbar.Location != "street" {
		t.Errorf("crowbar location = %q", crowbar.Location)
	}

	key := defs.Items["jukebox_key"]
	if !key.Hidden {
		t.Error("jukebox_key should be hidden")
	}

	oilCan := defs.Items["oil_can"]
	if oilCan.Portable {
		t.Error("oil_can should not be portable")
	}
	if !oilCan.Stuck {
		t.Error("oil_can should be stuck")
	}
	if oilCan.Uses != 3 {
		t.Errorf("oil_can uses = %d, want 3", oilCan.Uses)
	}

	matchbook := defs.Items["matchbook"]
	if matchbook.Location != "nowhere" {
		t.Errorf("matchbook location = %q, want nowhere", matchbook.Location)
	}
	if matchbook.Text != "Call Delia." {
		t.Errorf("matchbook text = %q", matchbook.Text)
	}

	// Item order follows definition order.
	want := []string{"crowbar", "jukebox_key", "oil_can", "matchbook"}
	if len(defs.ItemOrder) != len(want) {
		t.Fatalf("ItemOrder = %v, want %v", defs.ItemOrder, want)
	}
	for i, id := range want {
		if defs.ItemOrder[i] != id {
			t.Errorf("ItemOrder[%d] = %q, want %q", i, defs.ItemOrder[i], id)
		}
	}

	// NPCs.
	barkeep, ok := defs.NPCs["barkeep"]
	if !ok {
		t.Fatal("NPC 'barkeep' not found")
	}
	if barkeep.Name != "Sal" {
		t.Errorf("barkeep name = %q", barkeep.Name)
	}
	if barkeep.Home != "bar" {
		t.Errorf("barkeep home = %q", barkeep.Home)
	}
	if barkeep.Trust != 1 {
		t.Errorf("barkeep trust = %d", barkeep.Trust)
	}
	if barkeep.Topics["cellar"] != "Stay out of the cellar." {
		t.Errorf("barkeep cellar topic = %q", barkeep.Topics["cellar"])
	}

	// Hints.
	if len(defs.Hints["bar"]) != 2 {
		t.Errorf("bar hints = %v", defs.Hints["bar"])
	}
}

func TestLoad_InvalidRefs_Fails(t *testing.T) {
	_, err := LoadDir("testdata/invalid_refs")
	if err == nil {
		t.Fatal("expected error for invalid references")
	}
	if !strings.Contains(err.Error(), "undefined room") {
		t.Errorf("error = %q, expected 'undefined room'", err.Error())
	}
}

func TestLoad_DuplicateItems_Fails(t *testing.T) {
	_, err := LoadDir("testdata/dup_items")
	if err == nil {
		t.Fatal("expected error for duplicate item IDs")
	}
	if !strings.Contains(err.Error(), "duplicate item ID") {
		t.Errorf("error = %q, expected 'duplicate item ID'", err.Error())
	}
}

func TestLoad_BadLuaSyntax_Fails(t *testing.T) {
	_, err := LoadDir("testdata/bad_lua")
	if err == nil {
		t.Fatal("expected error for bad Lua syntax")
	}
}

func TestLoad_NoGameDef_Fails(t *testing.T) {
	_, err := LoadDir("testdata/no_game")
	if err == nil {
		t.Fatal("expected error for missing Game{} definition")
	}
	if !strings.Contains(err.Error(), "no Game{} definition") {
		t.Errorf("error = %q, expected 'no Game{} definition'", err.Error())
	}
}

func TestLoad_SandboxEnforced(t *testing.T) {
	// os library should not be available.
	L := newTestVM()
	defer L.Close()

	err := L.DoString(`os.execute("echo pwned")`)
	if err == nil {
		t.Fatal("expected sandbox to block os.execute")
	}
}

func TestLoad_FileOrdering(t *testing.T) {
	files := sortedLuaFiles([]string{"rooms.lua", "game.lua", "items.lua", "npcs.lua"})
	if files[0] != "game.lua" {
		t.Errorf("first file = %q, want game.lua", files[0])
	}
	// Rest should be alphabetical.
	if files[1] != "items.lua" {
		t.Errorf("second file = %q, want items.lua", files[1])
	}
}
