package engine

import (
	"github.com/mcross/shadowcircuit/engine/resolve"
	"github.com/mcross/shadowcircuit/engine/rules"
	"github.com/mcross/shadowcircuit/types"
)

func (g *Session) cmdGo(intent types.Intent) ([]string, int) {
	dir := intent.Object
	if dir == "" {
		return []string{"Go where?"}, 0
	}
	room := g.State.CurrentRoom()
	exit, ok := room.Exits[dir]
	if !ok {
		return []string{"You can't go that way."}, 0
	}
	if exit.Gate != "" {
		if msg, ok := g.State.Gates[exit.Gate]; ok {
			return []string{msg}, 0
		}
		return []string{"That path is blocked."}, 0
	}
	g.State.Visit(exit.To)
	return g.describeRoom(exit.To), 1
}

func (g *Session) cmdTake(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Take what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err != nil {
		return []string{err.Error()}, 0
	}
	if ent.Kind != resolve.KindItem {
		return []string{"That's not something you can pocket."}, 0
	}
	item := g.State.Items[ent.ID]
	if g.State.HasItem(ent.ID) {
		return []string{"You already have the " + item.Name + "."}, 0
	}
	if !item.Portable {
		return []string{"That's not something you can pocket."}, 0
	}
	if item.Stuck {
		return []string{"The resin threads still hold the " + item.Name + ". Needs softening or a trick."}, 0
	}
	g.State.Acquire(ent.ID)
	return []string{"You take the " + item.Name + "."}, 1
}

func (g *Session) cmdDrop(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Drop what?"}, 0
	}
	id, ok := g.findCarried(intent.Object)
	if !ok {
		return []string{"You don't have that."}, 0
	}
	g.State.Drop(id, g.State.Player.Location)
	return []string{"You drop the " + g.State.Items[id].Name + "."}, 1
}

func (g *Session) cmdExamine(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Examine what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err != nil {
		return []string{err.Error()}, 0
	}
	switch ent.Kind {
	case resolve.KindItem:
		out := []string{g.State.Items[ent.ID].Desc}
		out = append(out, g.itemExamineNotes(ent.ID)...)
		return out, 1
	case resolve.KindNPC:
		return []string{g.State.NPCs[ent.ID].Desc}, 1
	default:
		return g.featureDesc(ent.ID), 1
	}
}

func (g *Session) cmdRead(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Read what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err != nil || ent.Kind != resolve.KindItem {
		return []string{"No readable text there."}, 0
	}
	item := g.State.Items[ent.ID]
	if item.Text == "" {
		return []string{"The " + item.Name + " has no readable text."}, 1
	}
	out := []string{item.Text}
	if ent.ID == "poster" && !g.State.Flag(rules.FlagKnowsCode) {
		g.State.SetFlag(rules.FlagKnowsCode, true)
		out = append(out, "You notice the security code: 1207")
	}
	return out, 1
}

func (g *Session) cmdOpen(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Open what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err != nil {
		return []string{err.Error()}, 0
	}
	if ent.Kind != resolve.KindItem {
		return []string{"It doesn't open."}, 1
	}
	switch ent.ID {
	case "brass_locket":
		locket := g.State.Items["brass_locket"]
		if locket.Stuck {
			return []string{"Resin holds it too tight."}, 1
		}
		if locket.Open {
			return []string{"It's already open."}, 1
		}
		locket.Open = true
		g.State.Acquire("feather_token")
		g.State.SetFlag(rules.FlagTokenFeather, true)
		return []string{
			"You open the locket: a miniature portrait. Ezra Vale and a gentle-faced man.",
			"Along the rim, a tiny silver sigil slips free: a FEATHER TOKEN!",
		}, 1
	case "lens_case":
		if g.State.Items["lens_case"].Open {
			return []string{"The padded case already lies open."}, 1
		}
		return []string{"The case won't open by hand. Needs a key or magnet swipe."}, 1
	}
	return []string{"You can't open the " + g.State.Items[ent.ID].Name + "."}, 1
}

func (g *Session) cmdClose(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Close what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err == nil && ent.Kind == resolve.KindItem && ent.ID == "brass_locket" {
		g.State.Items["brass_locket"].Open = false
		return []string{"You close the locket. It still thrums faintly."}, 1
	}
	return []string{"No need to close that."}, 1
}

func (g *Session) cmdUse(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Use what?"}, 0
	}
	itemID, ok := g.findCarried(intent.Object)
	if !ok {
		return []string{"You don't have that."}, 0
	}

	var targetID string
	if intent.Target != "" {
		if ent, err := resolve.Name(g.State, intent.Target); err == nil {
			targetID = ent.ID
		}
	}

	// On the tower roof, using anything against Vale or the necroframe is
	// the confrontation.
	if g.State.Player.Location == "VALE_ROOF" && (targetID == "ezra_vale" || targetID == "necroframe") {
		return g.confront(itemID), 1
	}

	if r := rules.FindUse(g.State, itemID, targetID); r != nil {
		return r.Fire(g.State), 1
	}
	return []string{"Nothing obvious happens."}, 1
}

// confront resolves a final-confrontation attempt against Ezra Vale.
func (g *Session) confront(itemID string) []string {
	r := rules.FindConfront(g.State, itemID)
	if r == nil {
		return rules.Taunt
	}
	g.State.Ending = r.Ending
	out := append([]string{}, r.Lines...)
	return append(out, describeEnding(g.State)...)
}

func (g *Session) cmdCombine(intent types.Intent) ([]string, int) {
	if intent.Object == "" || intent.Target == "" {
		return []string{"Combine what with what?"}, 0
	}
	a, okA := g.findCarried(intent.Object)
	b, okB := g.findCarried(intent.Target)
	if !okA || !okB {
		return []string{"You don't have both items to combine."}, 0
	}
	if r := rules.FindCombine(a, b); r != nil {
		return r.Fire(g.State), 1
	}
	return []string{"You can't combine those items."}, 1
}

func (g *Session) cmdPush(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Push what?"}, 0
	}
	ent, err := resolve.Name(g.State, intent.Object)
	if err != nil {
		return []string{err.Error()}, 0
	}
	if ent.ID == "crate" {
		return rules.PushCrate(g.State), 1
	}
	return []string{"You can't push that here."}, 1
}

func (g *Session) cmdEnterCode(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Enter which code?"}, 0
	}
	return rules.EnterCode(g.State, intent.Object), 1
}

func (g *Session) cmdTraceSigil(types.Intent) ([]string, int) {
	return rules.TraceSigil(g.State), 1
}

func (g *Session) cmdCraft(types.Intent) ([]string, int) {
	return rules.CraftCounterInk(g.State), 1
}

func (g *Session) cmdTuneAntenna(types.Intent) ([]string, int) {
	return rules.TuneAntenna(g.State), 1
}

func (g *Session) cmdInsertToken(intent types.Intent) ([]string, int) {
	kind := intent.Object
	if kind == "" {
		return []string{"Insert which token? (WARD / FEATHER / SHADOW)"}, 0
	}
	// "insert token feather" parses as object "token feather".
	kind = lastWord(kind)
	if kind == "token" {
		return []string{"Insert which token? (WARD / FEATHER / SHADOW)"}, 0
	}
	return rules.InsertToken(g.State, kind), 1
}

// findCarried resolves a noun phrase against the inventory only.
func (g *Session) findCarried(name string) (string, bool) {
	ent, err := resolve.Name(g.State, name)
	if err != nil || ent.Kind != resolve.KindItem || !g.State.HasItem(ent.ID) {
		return "", false
	}
	return ent.ID, true
}
