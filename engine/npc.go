package engine

import (
	"sort"
	"strings"

	"github.com/mcross/shadowcircuit/engine/resolve"
	"github.com/mcross/shadowcircuit/engine/rules"
	"github.com/mcross/shadowcircuit/types"
)

// findPresentNPC resolves a noun phrase to an NPC in the current room.
func (g *Session) findPresentNPC(name string) (string, bool) {
	ent, err := resolve.Name(g.State, name)
	if err != nil || ent.Kind != resolve.KindNPC {
		return "", false
	}
	return ent.ID, true
}

func (g *Session) cmdTalk(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Talk to whom?"}, 0
	}
	npcID, ok := g.findPresentNPC(intent.Object)
	if !ok {
		return []string{"No one by that name here."}, 0
	}
	npc := g.State.NPCs[npcID]
	if !npc.Spoken {
		npc.Spoken = true
		g.State.SetFlag("met_"+npcID, true)
	}

	topic := "default"
	if intent.Prep == "about" && intent.Target != "" {
		topic = intent.Target
	}
	key, response := matchTopic(npc.Topics, topic)
	if response == "" {
		response = "They don't respond."
	}
	out := []string{npc.Name + ": " + response}

	// Asking the right questions earns trust.
	if npcID == "tia_sol" && (key == "sigils" || key == "herbs") {
		npc.Trust++
	}
	if npcID == "reef" && g.State.HasItem("mug") {
		out = append(out, "He eyes your mug. 'Trade? I could use that warmth.' (GIVE MUG TO REEF)")
	}
	return out, 1
}

// matchTopic picks the reply for an asked-about topic. An exact key match
// wins; otherwise any key contained in the asked phrase matches, so
// "ward sigils" still lands on the "sigils" entry. Keys are tried in
// sorted order to keep ties deterministic. Falls back to "default".
func matchTopic(topics map[string]string, topic string) (string, string) {
	if r, ok := topics[topic]; ok {
		return topic, r
	}
	keys := make([]string, 0, len(topics))
	for k := range topics {
		if k != "default" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(topic, k) {
			return k, topics[k]
		}
	}
	return "default", topics["default"]
}

func (g *Session) cmdGive(intent types.Intent) ([]string, int) {
	if intent.Object == "" || intent.Target == "" {
		return []string{"Give what to whom?"}, 0
	}
	itemID, ok := g.findCarried(intent.Object)
	if !ok {
		return []string{"You don't have that."}, 0
	}
	npcID, ok := g.findPresentNPC(intent.Target)
	if !ok {
		return []string{"They're not here."}, 0
	}
	if r := rules.FindGive(itemID, npcID); r != nil {
		return r.Fire(g.State), 1
	}
	return []string{"They accept it with a nod, but nothing obvious changes."}, 1
}

func (g *Session) cmdMesmerize(intent types.Intent) ([]string, int) {
	if intent.Object == "" {
		return []string{"Mesmerize whom?"}, 0
	}
	npcID, ok := g.findPresentNPC(intent.Object)
	if !ok {
		return []string{"No target to catch your gaze."}, 0
	}
	if g.State.Player.Will <= 0 {
		return []string{"You lack the will to mesmerize anyone."}, 1
	}
	g.State.Player.Will--
	if r := rules.FindMesmerize(npcID); r != nil {
		return r.Fire(g.State), 1
	}
	return []string{"You mesmerize " + g.State.NPCs[npcID].Name + "."}, 1
}

func (g *Session) cmdBite(intent types.Intent) ([]string, int) {
	target := intent.Object
	if target == "" {
		target = intent.Target
	}
	if target == "" {
		return []string{"Bite what?"}, 0
	}
	npcID, ok := g.findPresentNPC(target)
	if !ok {
		return []string{"You don't see them here to bite."}, 0
	}
	if g.State.Player.Hunger <= 0 {
		return []string{"You're not hungry right now."}, 1
	}
	g.State.Player.Hunger--
	g.State.Player.Health++
	g.State.AddCounter(rules.CounterBites, 1)

	out := []string{"You bite " + g.State.NPCs[npcID].Name + ". Warmth flows through you."}
	if npcID == "ezra_vale" {
		out = append(out, "Vale's blood burns with dark power!")
		g.State.Player.Health -= 2
	} else {
		g.State.AddCounter(rules.CounterEmpathy, -1)
	}
	return out, 1
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
