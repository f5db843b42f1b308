package rules

import "github.com/mcross/shadowcircuit/engine/world"

// GiveRule handles "give <item> to <npc>".
type GiveRule struct {
	Item string
	NPC  string
	Fire func(s *world.State) []string
}

var GiveRules = []GiveRule{
	{
		Item: "mug", NPC: "reef",
		Fire: func(s *world.State) []string {
			s.Drop("mug", s.Player.Location)
			s.NPCs["reef"].Trust++
			if !s.HasItem("hematite") && s.Items["hematite"].Location != s.Player.Location {
				s.Acquire("hematite")
				return []string{"You hand him the warmth. He presses a hematite stone into your palm. 'Ground yourself.'"}
			}
			return []string{"He nods gratefully, warms his hands. 'Bless you.'"}
		},
	},
	{
		Item: "bone", NPC: "gasket",
		Fire: func(s *world.State) []string {
			s.Drop("bone", s.Player.Location)
			if s.Flag(FlagLoyalDog) && !s.Flag(FlagRoofUnlocked) {
				s.ClearGate("L12", "south")
				s.SetFlag(FlagRoofUnlocked, true)
				return []string{"Gasket slips through the gate with the thread and yanks. *Click.* The latch releases."}
			}
			return []string{"Gasket crunches the bone, tail a metronome of joy."}
		},
	},
}

// FindGive returns the first give rule matching the item and recipient.
func FindGive(itemID, npcID string) *GiveRule {
	for i := range GiveRules {
		r := &GiveRules[i]
		if r.Item == itemID && r.NPC == npcID {
			return r
		}
	}
	return nil
}

// MesmerizeRule describes an NPC's reaction to being mesmerized. The will
// cost is paid by the caller before the rule fires.
type MesmerizeRule struct {
	NPC  string
	Fire func(s *world.State) []string
}

var MesmerizeRules = []MesmerizeRule{
	{
		NPC: "lupita",
		Fire: func(s *world.State) []string {
			s.SetFlag(FlagKnowsCode, true)
			return []string{"Lupita's eyes glaze. 'The gallery code... 1207...'"}
		},
	},
	{
		NPC: "reef",
		Fire: func(s *world.State) []string {
			return []string{"Reef speaks in monotone: 'Ward sigils... touch with silver...'"}
		},
	},
	{
		NPC: "tia_sol",
		Fire: func(s *world.State) []string {
			s.NPCs["tia_sol"].Trust -= 2
			return []string{"Tia Sol resists strongly. 'Your tricks won't work here, creature.'"}
		},
	},
}

// FindMesmerize returns the reaction rule for an NPC, if any.
func FindMesmerize(npcID string) *MesmerizeRule {
	for i := range MesmerizeRules {
		if MesmerizeRules[i].NPC == npcID {
			return &MesmerizeRules[i]
		}
	}
	return nil
}
