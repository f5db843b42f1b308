package rules

import (
	"fmt"

	"github.com/mcross/shadowcircuit/engine/world"
)

// TraceSigil counters the chalk sigil in Rain Alley. Tracing costs will:
// one point with the note scrap or sigil manual in hand, two without.
func TraceSigil(s *world.State) []string {
	if s.Player.Location != "L01" {
		return []string{"No sigil here to trace."}
	}
	if s.Rooms["L01"].Exits["south"].Gate == "" {
		return []string{"You've already dispelled the door sigil."}
	}
	cost := 2
	if s.HasItem("note_scrap") || s.HasItem("sigil_manual") {
		cost = 1
	}
	if s.Player.Will < cost {
		return []string{"You start the strokes but your focus slips. (Need more WILL.)"}
	}
	s.Player.Will -= cost
	s.ClearGate("L01", "south")
	s.SetFlag(FlagSigilTraced, true)
	return []string{"You trace the counter-strokes. The sigil exhales and fades. The back room unlocks."}
}

// EnterCode tries a code on the gallery keypad.
func EnterCode(s *world.State, code string) []string {
	if s.Player.Location != "L05" {
		return []string{"There's no keypad here."}
	}
	if code == KeypadCode || code == "12-07" {
		s.ClearGate("L05", "inside")
		s.SetFlag(FlagFacadeUnlocked, true)
		return []string{"Beep. Beep. Beep. Beep. *Click.* The gallery door unlatches."}
	}
	return []string{"The keypad rejects it with a damp little chirp."}
}

// CraftCounterInk grinds garlic, rosemary, and hematite into counter-ink.
// Crafting is an act of intent; it raises empathy.
func CraftCounterInk(s *world.State) []string {
	if s.HasItem("counter_ink") {
		return []string{"You already have counter-sigil ink."}
	}
	if !s.HasItem("garlic") || !s.HasItem("rosemary") || !s.HasItem("hematite") {
		return []string{"You need GARLIC, ROSEMARY, and HEMATITE to craft the ink."}
	}
	s.Consume("garlic")
	s.Consume("rosemary")
	s.Consume("hematite")
	s.Acquire("counter_ink")
	s.AddCounter(CounterEmpathy, 1)
	return []string{"You grind herbs and stone, steeped in your breath. The ink smells like thunder before rain."}
}

// TuneAntenna locks the ward tones and opens the rooftop path south.
func TuneAntenna(s *world.State) []string {
	if s.Player.Location != "L12" {
		return []string{"No antenna to tune here."}
	}
	if !s.Flag(FlagAntennaFixed) {
		return []string{"The panel rattles too loose to hold a frequency. Secure it first."}
	}
	if s.Flag(FlagAntennaTuned) {
		return []string{"The antenna is already tuned."}
	}
	s.SetFlag(FlagAntennaTuned, true)
	s.SetFlag(FlagRoofUnlocked, true)
	s.ClearGate("L12", "south")
	return []string{"You nudge the three tones until they lock, like teeth of a key finding its ward. The path south slackens."}
}

// tokenItems maps the token kind named in "insert token <kind>" to its item.
var tokenItems = map[string]string{
	"ward":    "ward_token",
	"feather": "feather_token",
	"shadow":  "shadow_token",
}

// InsertToken sockets a sigil token into the vault door. Three tokens open
// the vault; further tokens are refused.
func InsertToken(s *world.State, kind string) []string {
	if s.Player.Location != "L07" {
		return []string{"There is nowhere to socket that here."}
	}
	itemID, ok := tokenItems[kind]
	if !ok {
		return []string{"Unknown token. Try WARD, FEATHER, or SHADOW."}
	}
	if !s.HasItem(itemID) {
		return []string{"You don't have that token."}
	}
	if s.Counter(CounterSockets) >= 3 {
		return []string{"The sockets are full; the vault already stands open."}
	}
	s.Consume(itemID)
	n := s.AddCounter(CounterSockets, 1)
	lines := []string{fmt.Sprintf("You press the %s into a socket. It hums in place.", s.Items[itemID].Name)}
	if n >= 3 && !s.Flag(FlagVaultOpen) {
		s.SetFlag(FlagVaultOpen, true)
		s.Acquire("aether_resin")
		s.Acquire("case_key")
		lines = append(lines, "The vault sighs open. Inside: refined AETHER RESIN, and a tiny CASE KEY.")
	}
	return lines
}

// PushCrate positions the crate under the fire escape.
func PushCrate(s *world.State) []string {
	if s.Player.Location != "L01" {
		return []string{"You can't push that here."}
	}
	if s.Flag(FlagCratePositioned) {
		return []string{"The crate already sits under the fire escape."}
	}
	s.SetFlag(FlagCratePositioned, true)
	s.ClearGate("L01", "up")
	return []string{
		"You push the heavy crate under the fire escape ladder.",
		"Now you can climb up to the rooftops!",
	}
}
