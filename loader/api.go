package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Room "id" { ... } — curried: Room("id") returns a function that takes a table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Item "id" { ... } — curried.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawItem{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// NPC "id" { ... } — curried.
	L.SetGlobal("NPC", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.npcs = append(coll.npcs, rawNPC{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Feature "id" "description" — curried.
	L.SetGlobal("Feature", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			text := L.CheckString(1)
			coll.features = append(coll.features, rawText{id: id, text: text})
			return 0
		}))
		return 1
	}))

	// Gate "id" "blocked message" — curried.
	L.SetGlobal("Gate", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			text := L.CheckString(1)
			coll.gates = append(coll.gates, rawText{id: id, text: text})
			return 0
		}))
		return 1
	}))

	// Hints "room_id" { "hint 1", "hint 2", ... } — curried.
	L.SetGlobal("Hints", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.hints = append(coll.hints, rawHints{roomID: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Gated("room_id", "gate_id") — builds a gated exit entry.
	L.SetGlobal("Gated", L.NewFunction(func(L *lua.LState) int {
		to := L.CheckString(1)
		gate := L.CheckString(2)
		tbl := L.NewTable()
		tbl.RawSetString("to", lua.LString(to))
		tbl.RawSetString("gate", lua.LString(gate))
		L.Push(tbl)
		return 1
	}))
}
