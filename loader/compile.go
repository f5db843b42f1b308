// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"

	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
	lua "github.com/yuin/gopher-lua"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// rawItem holds an item table before compilation.
type rawItem struct {
	id    string
	table *lua.LTable
}

// rawNPC holds an NPC table before compilation.
type rawNPC struct {
	id    string
	table *lua.LTable
}

// rawText holds a one-line definition (features, gates).
type rawText struct {
	id   string
	text string
}

// rawHints holds a per-room hint list before compilation.
type rawHints struct {
	roomID string
	table  *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			if vs, ok := v.(lua.LString); ok {
				m[string(ks)] = string(vs)
			}
		}
	})
	return m
}

// tableToStringSlice converts a Lua array table to a []string.
func tableToStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*world.Defs, error) {
	defs := &world.Defs{
		Rooms:    map[string]types.Room{},
		Items:    map[string]types.Item{},
		NPCs:     map[string]types.NPC{},
		Features: map[string]string{},
		Gates:    map[string]string{},
		Hints:    map[string][]string{},
	}

	// Game.
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	// Rooms.
	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room ID %q", raw.id)
		}
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		defs.Rooms[room.ID] = room
	}

	// Items — definition order is the display order.
	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.id]; dup {
			return nil, fmt.Errorf("duplicate item ID %q", raw.id)
		}
		defs.Items[raw.id] = compileItem(raw)
		defs.ItemOrder = append(defs.ItemOrder, raw.id)
	}

	// NPCs.
	for _, raw := range coll.npcs {
		if _, dup := defs.NPCs[raw.id]; dup {
			return nil, fmt.Errorf("duplicate NPC ID %q", raw.id)
		}
		defs.NPCs[raw.id] = compileNPC(raw)
		defs.NPCOrder = append(defs.NPCOrder, raw.id)
	}

	// Features and gates.
	for _, raw := range coll.features {
		if _, dup := defs.Features[raw.id]; dup {
			return nil, fmt.Errorf("duplicate feature ID %q", raw.id)
		}
		defs.Features[raw.id] = raw.text
	}
	for _, raw := range coll.gates {
		if _, dup := defs.Gates[raw.id]; dup {
			return nil, fmt.Errorf("duplicate gate ID %q", raw.id)
		}
		defs.Gates[raw.id] = raw.text
	}

	// Hints.
	for _, raw := range coll.hints {
		if _, dup := defs.Hints[raw.roomID]; dup {
			return nil, fmt.Errorf("duplicate hint list for room %q", raw.roomID)
		}
		defs.Hints[raw.roomID] = tableToStringSlice(raw.table)
	}

	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:    getString(tbl, "title"),
		Author:   getString(tbl, "author"),
		Version:  getString(tbl, "version"),
		Start:    getString(tbl, "start"),
		Intro:    getString(tbl, "intro"),
		MaxTurns: getInt(tbl, "max_turns", 0),
	}
}

func compileRoom(raw rawRoom) (types.Room, error) {
	tbl := raw.table
	exits, err := compileExits(getTable(tbl, "exits"))
	if err != nil {
		return types.Room{}, err
	}
	return types.Room{
		ID:       raw.id,
		Name:     getString(tbl, "name"),
		Desc:     getString(tbl, "description"),
		Exits:    exits,
		Features: tableToStringSlice(getTable(tbl, "features")),
		Listen:   getString(tbl, "listen"),
		Smell:    getString(tbl, "smell"),
		Sense:    getString(tbl, "sense"),
	}, nil
}

// compileExits accepts either a plain room ID or a Gated(...) table per
// direction.
func compileExits(tbl *lua.LTable) (map[string]types.Exit, error) {
	if tbl == nil {
		return nil, nil
	}
	exits := map[string]types.Exit{}
	var badDir string
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		switch val := v.(type) {
		case lua.LString:
			exits[string(ks)] = types.Exit{To: string(val)}
		case *lua.LTable:
			exits[string(ks)] = types.Exit{
				To:   getString(val, "to"),
				Gate: getString(val, "gate"),
			}
		default:
			badDir = string(ks)
		}
	})
	if badDir != "" {
		return nil, fmt.Errorf("exit %q must be a room ID or Gated(room, gate)", badDir)
	}
	return exits, nil
}

func compileItem(raw rawItem) types.Item {
	tbl := raw.table
	return types.Item{
		ID:       raw.id,
		Name:     getString(tbl, "name"),
		Desc:     getString(tbl, "description"),
		Text:     getString(tbl, "text"),
		Portable: getBool(tbl, "portable", true),
		Location: getString(tbl, "location"),
		Stuck:    getBool(tbl, "stuck", false),
		Open:     getBool(tbl, "open", false),
		Hidden:   getBool(tbl, "hidden", false),
		Uses:     getInt(tbl, "uses", 0),
	}
}

func compileNPC(raw rawNPC) types.NPC {
	tbl := raw.table
	return types.NPC{
		ID:     raw.id,
		Name:   getString(tbl, "name"),
		Desc:   getString(tbl, "description"),
		Home:   getString(tbl, "home"),
		Trust:  getInt(tbl, "trust", 0),
		Topics: tableToStringMap(getTable(tbl, "topics")),
	}
}
