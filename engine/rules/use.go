package rules

import (
	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

// UseRule matches "use <item> on <target>" against a carried item and a
// resolved target. A nil Targets list accepts any target, including none.
type UseRule struct {
	Item    string
	Targets []string
	Room    string // "" means any room
	When    func(s *world.State) bool
	Fire    func(s *world.State) []string
}

// UseRules is consulted in order; the first match fires.
var UseRules = []UseRule{
	{
		Item:    "solvent",
		Targets: []string{"resin_threads", "brass_locket"},
		Room:    "L05",
		When:    func(s *world.State) bool { return s.Items["brass_locket"].Stuck },
		Fire: func(s *world.State) []string {
			solvent := s.Items["solvent"]
			if solvent.Uses <= 0 {
				return []string{"Your solvent bottle is dry."}
			}
			solvent.Uses--
			lines := []string{
				"You soak the rag with solvent and press to the threads. They hiss and slacken.",
				"With a tug, the locket comes free.",
			}
			s.Items["brass_locket"].Stuck = false
			if !s.HasItem("brass_locket") {
				s.Acquire("brass_locket")
				lines = append(lines, "You take the brass locket.")
			}
			return lines
		},
	},
	{
		// Once the locket is free, solvent on the leftovers is flavor only.
		Item:    "solvent",
		Targets: []string{"resin_threads", "brass_locket"},
		Room:    "L05",
		Fire: func(s *world.State) []string {
			return []string{"The resin bubbles and dissolves."}
		},
	},
	{
		Item:    "mug",
		Targets: []string{"resin_threads", "brass_locket"},
		Room:    "L05",
		When:    func(s *world.State) bool { return s.Items["brass_locket"].Stuck },
		Fire: func(s *world.State) []string {
			s.Items["brass_locket"].Stuck = false
			s.Consume("mug")
			return []string{
				"The hot liquid melts the resin. The locket breaks free!",
				"The mug is now empty and cold.",
			}
		},
	},
	{
		Item:    "mug",
		Targets: []string{"resin_threads", "brass_locket"},
		Room:    "L05",
		Fire: func(s *world.State) []string {
			return []string{"The heat softens the resin."}
		},
	},
	{
		Item:    "fishing_gear",
		Targets: []string{"storm_drain"},
		Room:    "L02",
		When:    func(s *world.State) bool { return s.Items["ward_chalk"].Location == types.LocNowhere },
		Fire: func(s *world.State) []string {
			s.Acquire("ward_chalk")
			return []string{
				"You lower the makeshift fishing line into the drain...",
				"Something glints! You pull up a WARD CHALK stick!",
			}
		},
	},
	{
		Item:    "fishing_gear",
		Targets: []string{"storm_drain"},
		Room:    "L02",
		Fire: func(s *world.State) []string {
			return []string{"You scrape gum and a movie stub. Still, nice technique."}
		},
	},
	{
		Item:    "ward_chalk",
		Targets: []string{"ward_bench"},
		Room:    "L06",
		When:    func(s *world.State) bool { return !s.Flag(FlagTokenWard) },
		Fire: func(s *world.State) []string {
			s.SetFlag(FlagTokenWard, true)
			s.Acquire("ward_token")
			if s.HasItem("newspaper") {
				return []string{"You chalk and press newspaper for a clean rubbing. The ward token lifts into your palm."}
			}
			return []string{"You trace the ward lines and lift a chalky token, rough but serviceable."}
		},
	},
	{
		Item:    "ward_chalk",
		Targets: []string{"ward_bench"},
		Room:    "L06",
		Fire: func(s *world.State) []string {
			return []string{"The carved ward is dormant now, its pattern already lifted."}
		},
	},
	{
		Item:    "silvered_thread",
		Targets: []string{"gasket"},
		Room:    "L11",
		Fire: func(s *world.State) []string {
			s.Acquire("shadow_token")
			s.SetFlag(FlagTokenShadow, true)
			s.SetFlag(FlagLoyalDog, true)
			s.Consume("silvered_thread")
			return []string{
				"You tie the silvered thread around Gasket's collar.",
				"He barks happily and bounds toward the shadows!",
				"The thread glows as he returns with a SHADOW TOKEN in his mouth!",
			}
		},
	},
	{
		Item:    "wire_cutter",
		Targets: []string{"chain_gate"},
		Room:    "L11",
		Fire: func(s *world.State) []string {
			s.ClearGate("L12", "south")
			s.SetFlag(FlagRoofUnlocked, true)
			return []string{
				"You cut through the chain links. The gate swings open!",
				"Beyond lies a passage to the roof network.",
			}
		},
	},
	{
		Item:    "magnet_card",
		Targets: []string{"lens_case", "case_lock"},
		Room:    "L09",
		When:    func(s *world.State) bool { return !s.Items["lens_case"].Open },
		Fire:    openLensCase("You swipe the card along the magnetic seam. *Click.*"),
	},
	{
		Item:    "case_key",
		Targets: []string{"lens_case", "case_lock"},
		Room:    "L09",
		When:    func(s *world.State) bool { return !s.Items["lens_case"].Open },
		Fire:    openLensCase("The tiny key turns with a reluctant squeak."),
	},
	{
		Item:    "counter_ink",
		Targets: []string{"chalk_sigil"},
		Room:    "L01",
		Fire: func(s *world.State) []string {
			s.ClearGate("L01", "south")
			s.SetFlag(FlagSigilTraced, true)
			s.Consume("counter_ink")
			return []string{
				"You trace the counter-pattern over the chalk sigil.",
				"The barrier dissolves! The service door unlocks.",
			}
		},
	},
	{
		Item:    "bolt",
		Targets: []string{"ward_antenna", "antenna_panel"},
		Room:    "L12",
		When:    func(s *world.State) bool { return !s.Flag(FlagAntennaFixed) },
		Fire: func(s *world.State) []string {
			s.SetFlag(FlagAntennaFixed, true)
			s.Consume("bolt")
			return []string{"You twist the bolt into place. The panel sits firm, hum sharpening to a stable chord."}
		},
	},
	{
		Item:    "bolt",
		Targets: []string{"ward_antenna", "antenna_panel"},
		Room:    "L12",
		Fire: func(s *world.State) []string {
			return []string{"The antenna panel is already secured."}
		},
	},
	{
		Item: "police_radio",
		Room: "L12",
		Fire: func(s *world.State) []string {
			if !s.Flag(FlagAntennaFixed) {
				return []string{"The radio hisses; the panel rattles too much to hold a clear frequency. Maybe secure it first?"}
			}
			return []string{"You sweep channels until the hum locks. Remember the cadence. TUNE ANTENNA could seal it."}
		},
	},
	{
		Item:    "empty_jar",
		Targets: []string{"resin_puddle"},
		Room:    "L07",
		When:    func(s *world.State) bool { return !s.Flag(FlagResinSampled) },
		Fire: func(s *world.State) []string {
			s.SetFlag(FlagResinSampled, true)
			s.Acquire("resin_sample")
			return []string{"You coax warm resin into the jar. It taps the glass like a slow heartbeat."}
		},
	},
	{
		Item:    "empty_jar",
		Targets: []string{"resin_puddle"},
		Room:    "L07",
		Fire: func(s *world.State) []string {
			return []string{"You already have a sample."}
		},
	},
	{
		Item:    "silver_nails",
		Targets: []string{"resin_sample", "resin_puddle"},
		When:    func(s *world.State) bool { return s.HasItem("aether_resin") },
		Fire: func(s *world.State) []string {
			return []string{"You coat the nails with refined resin. The air around them tastes like winter metal."}
		},
	},
	{
		Item: "rag",
		Fire: func(s *world.State) []string {
			return []string{"You wipe your hands clean. Mostly."}
		},
	},
}

func openLensCase(how string) func(s *world.State) []string {
	return func(s *world.State) []string {
		s.Items["lens_case"].Open = true
		return []string{how, "The padded case opens; the optics lift free of their cradle."}
	}
}

// FindUse returns the first use rule matching the carried item, the
// resolved target, the current room, and the rule's guard.
func FindUse(s *world.State, itemID, targetID string) *UseRule {
	for i := range UseRules {
		r := &UseRules[i]
		if r.Item != itemID {
			continue
		}
		if r.Targets != nil && !contains(r.Targets, targetID) {
			continue
		}
		if r.Room != "" && r.Room != s.Player.Location {
			continue
		}
		if r.When != nil && !r.When(s) {
			continue
		}
		return r
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
