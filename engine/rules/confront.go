package rules

import "github.com/mcross/shadowcircuit/engine/world"

// ConfrontRule decides the outcome of using an item against Ezra Vale or
// the necroframe on the tower roof. Rules are checked in order; the first
// whose conditions hold ends the game.
type ConfrontRule struct {
	Item   string
	When   func(s *world.State) bool
	Ending string
	Lines  []string
}

var ConfrontRules = []ConfrontRule{
	{
		Item:   "silver_nails",
		When:   func(s *world.State) bool { return s.Flag(FlagVaultOpen) },
		Ending: EndingContainment,
		Lines: []string{
			"You pin the silver nails into the necroframe's core.",
			"The resin locks cold around the ritual; silver binds it to silence.",
		},
	},
	{
		Item:   "lens_case",
		When:   func(s *world.State) bool { return s.HasItem("blueprint") },
		Ending: EndingObliteration,
		Lines: []string{
			"You angle mirrors along the dawn line. Light knifes the frame; sigils scream and go dark.",
		},
	},
	{
		Item: "brass_locket",
		When: func(s *world.State) bool {
			return s.HasItem("counter_ink") && s.Counter(CounterEmpathy) >= 1
		},
		Ending: EndingRedemption,
		Lines: []string{
			"You raise the locket, trace the counter-sigil in ink. Ezra's breath breaks; grief finds a softer path.",
		},
	},
}

// FindConfront returns the first confrontation rule the used item and
// state satisfy, or nil for a taunt.
func FindConfront(s *world.State, itemID string) *ConfrontRule {
	for i := range ConfrontRules {
		r := &ConfrontRules[i]
		if r.Item != itemID {
			continue
		}
		if r.When != nil && !r.When(s) {
			continue
		}
		return r
	}
	return nil
}

// Taunt is Vale's response when no confrontation rule matches.
var Taunt = []string{
	"'Leave me my work,' he says, voice a winter river. 'Or make it quick.'",
	"You need the right tools and approach for this confrontation.",
}

const endingRule = "═══════════════════════════════════════════════════════════════════════════════"

// EndingText holds the closing passage for each ending.
var EndingText = map[string][]string{
	EndingRedemption: {
		endingRule,
		"You approach Vale with compassion, not hatred. Your empathy reaches",
		"through his necromantic shell to the broken man within.",
		"'I... I remember what it was to be human,' he whispers.",
		"The necroframe dissolves as Vale chooses redemption over power.",
		endingRule,
		"**ENDING: REDEMPTION** - Vale is saved through compassion.",
	},
	EndingContainment: {
		endingRule,
		"Using the vault's ward technology, you contain Vale's power.",
		"He rages against the binding, but the sigils hold strong.",
		"'This won't hold me forever!' he snarls.",
		"But for now, Austin is safe from his influence.",
		endingRule,
		"**ENDING: CONTAINMENT** - Vale is imprisoned but alive.",
	},
	EndingObliteration: {
		endingRule,
		"With no other options, you strike at Vale's heart.",
		"The necroframe explodes in brilliant light as his power breaks.",
		"Vale screams as his essence scatters to the winds.",
		"Austin is free, but at the cost of a soul's destruction.",
		endingRule,
		"**ENDING: OBLITERATION** - Vale is destroyed completely.",
	},
	EndingDefeat: {
		endingRule,
		"DAWN BREAKS over Austin's skyline. The first rays pierce the gloom,",
		"and you feel your vampiric strength ebb. EZRA VALE has escaped",
		"into the light, his necromantic web still intact.",
		endingRule,
		"**ENDING: DAWN'S DEFEAT** - Time ran out. Vale wins.",
	},
}
