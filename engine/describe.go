package engine

import (
	"fmt"
	"strings"

	"github.com/mcross/shadowcircuit/engine/rules"
	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

const endingDefeat = rules.EndingDefeat

func defeatText() []string {
	return rules.EndingText[rules.EndingDefeat]
}

// exitOrder fixes the display order of exits.
var exitOrder = []string{"north", "south", "east", "west", "up", "down", "inside", "out", "hatch"}

// describeRoom produces the standard room description output.
func (g *Session) describeRoom(roomID string) []string {
	room, ok := g.State.Rooms[roomID]
	if !ok {
		return []string{"You are nowhere. This shouldn't happen."}
	}

	var out []string
	out = append(out, "**"+room.Name+"**")
	out = append(out, room.Desc)

	if items := g.State.RoomItems(roomID); len(items) > 0 {
		var names []string
		for _, id := range items {
			names = append(names, g.State.Items[id].Name)
		}
		out = append(out, "You see: "+strings.Join(names, ", "))
	}

	if npcs := g.State.RoomNPCs(roomID); len(npcs) > 0 {
		var names []string
		for _, id := range npcs {
			names = append(names, g.State.NPCs[id].Name)
		}
		out = append(out, "Present: "+strings.Join(names, ", "))
	}

	if len(room.Exits) > 0 {
		var list []string
		for _, dir := range exitOrder {
			exit, ok := room.Exits[dir]
			if !ok {
				continue
			}
			if exit.Gate != "" {
				list = append(list, dir+" ("+rules.GateTag(exit.Gate)+")")
			} else {
				list = append(list, dir)
			}
		}
		out = append(out, "Exits: "+strings.Join(list, ", "))
	}

	return out
}

func (g *Session) cmdLook(types.Intent) ([]string, int) {
	return g.describeRoom(g.State.Player.Location), 0
}

func (g *Session) cmdInventory(types.Intent) ([]string, int) {
	inv := g.State.Player.Inventory
	if len(inv) == 0 {
		return []string{"You carry nothing."}, 0
	}
	var names []string
	for _, id := range inv {
		names = append(names, g.State.Items[id].Name)
	}
	return []string{"Inventory: " + strings.Join(names, ", ")}, 0
}

func (g *Session) cmdStats(types.Intent) ([]string, int) {
	p := g.State.Player
	return []string{fmt.Sprintf("Turn %d/%d | Health: %d | Will: %d | Hunger: %d",
		p.Turn, p.MaxTurns, p.Health, p.Will, p.Hunger)}, 0
}

func (g *Session) cmdMap(types.Intent) ([]string, int) {
	out := []string{"Visited locations:"}
	for _, name := range g.State.VisitedRooms() {
		out = append(out, "- "+name)
	}
	return out, 0
}

// cmdHint picks the escalating hint for the current room. Later turns get
// more direct hints.
func (g *Session) cmdHint(types.Intent) ([]string, int) {
	tips := g.State.Hints[g.State.Player.Location]
	if len(tips) == 0 {
		return []string{"Trust your instincts. Or your nose."}, 0
	}
	step := g.State.Player.Turn / 8
	if step > 2 {
		step = 2
	}
	if step >= len(tips) {
		step = len(tips) - 1
	}
	return []string{"Hint: " + tips[step]}, 0
}

func (g *Session) cmdHelp(types.Intent) ([]string, int) {
	return []string{
		"COMMANDS:",
		"Movement: GO <direction> (N/S/E/W/U/D, INSIDE, OUT)",
		"Items: TAKE <item>, DROP <item>, USE <item> [ON <target>], COMBINE <A> WITH <B>",
		"Looking: LOOK, EXAMINE <thing>, INVENTORY/I, READ <thing>",
		"People: TALK <person> [ABOUT <topic>], GIVE <item> TO <person>",
		"Actions: OPEN/CLOSE <thing>, PUSH <thing>, LISTEN, SMELL, WAIT/Z",
		"Vampire: SENSE, MESMERIZE <person>, BITE <target>",
		"Special: ENTER CODE <####>, TRACE SIGIL, CRAFT COUNTER-INK, TUNE ANTENNA",
		"         INSERT TOKEN <WARD/FEATHER/SHADOW>",
		"Game: STATS, MAP, HINT, SAVE, LOAD, QUIT",
	}, 0
}

func (g *Session) cmdListen(types.Intent) ([]string, int) {
	room := g.State.CurrentRoom()
	if hasFeature(room, "ward_antenna") {
		if !g.State.Flag(rules.FlagAntennaFixed) {
			return []string{"Three tones drift, but the panel rattles out of tune."}, 1
		}
		return []string{"Three tones: low, mid, high. They slide, then align for a breath, like they want to lock."}, 1
	}
	if room.Listen != "" {
		return []string{room.Listen}, 1
	}
	return []string{"Rain, engines, and your heartbeat in your ears."}, 1
}

func (g *Session) cmdSmell(types.Intent) ([]string, int) {
	if room := g.State.CurrentRoom(); room.Smell != "" {
		return []string{room.Smell}, 1
	}
	return []string{"Urban scents: rain, exhaust, and humanity."}, 1
}

func (g *Session) cmdSense(types.Intent) ([]string, int) {
	for _, id := range g.State.RoomNPCs(g.State.Player.Location) {
		if id == "ezra_vale" {
			return []string{"VAMPIRE SENSE: Overwhelming power, death magic, and hunger."}, 1
		}
	}
	if room := g.State.CurrentRoom(); room.Sense != "" {
		return []string{room.Sense}, 1
	}
	return []string{"VAMPIRE SENSE: Nothing supernatural stands out here."}, 1
}

func (g *Session) cmdWait(types.Intent) ([]string, int) {
	return []string{"You let the night breathe around you."}, 1
}

func hasFeature(room *types.Room, id string) bool {
	for _, f := range room.Features {
		if f == id {
			return true
		}
	}
	return false
}

// featureDesc returns the examine text for a room feature. A few features
// have state-dependent text.
func (g *Session) featureDesc(id string) []string {
	switch id {
	case "vault_door":
		return []string{fmt.Sprintf("A massive door with three sigil sockets. %d/3 tokens inserted.",
			g.State.Counter(rules.CounterSockets))}
	case "ward_bench":
		if g.State.Flag(rules.FlagTokenWard) {
			return []string{"The carved ward is now dormant, its power transferred."}
		}
		return []string{"A protective ward carved deep in stone. It resonates with power."}
	case "shadowmark":
		if g.State.Flag(rules.FlagShadowmarkSeen) {
			return []string{"The shadow sigil mark twists in the darkness."}
		}
		g.State.SetFlag(rules.FlagShadowmarkSeen, true)
		return []string{"Dark chalk spirals that hurt to look at directly. A shadow sigil."}
	}
	if desc, ok := g.State.Features[id]; ok {
		return []string{desc}
	}
	return []string{"You examine the " + strings.ReplaceAll(id, "_", " ") + "."}
}

// itemExamineNotes appends state-dependent observations to an item's
// description.
func (g *Session) itemExamineNotes(id string) []string {
	switch id {
	case "brass_locket":
		if g.State.Items["brass_locket"].Stuck {
			return []string{"It won't budge. Resin holds it fast."}
		}
	case "lens_case":
		if !g.State.Flag(rules.FlagCardRevealed) {
			g.State.SetFlag(rules.FlagCardRevealed, true)
			g.State.Items["magnet_card"].Hidden = false
			return []string{"Behind the case, you spot a magnetic card!"}
		}
	case "resin_puddle":
		return []string{"It pulses faintly. Maybe collect a sample in a JAR."}
	}
	return nil
}

func describeEnding(st *world.State) []string {
	return rules.EndingText[st.Ending]
}
