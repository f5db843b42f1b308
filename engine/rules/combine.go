package rules

import "github.com/mcross/shadowcircuit/engine/world"

// CombineRule joins two carried items into a third. Order of the pair
// does not matter.
type CombineRule struct {
	A, B string
	Fire func(s *world.State) []string
}

var CombineRules = []CombineRule{
	{
		A: "string", B: "tarot_coin",
		Fire: func(s *world.State) []string {
			s.Consume("string")
			s.Consume("tarot_coin")
			s.Acquire("fishing_gear")
			return []string{"You tie the string to the tarot coin, creating fishing gear!"}
		},
	},
}

// FindCombine returns the rule joining the two items, if any.
func FindCombine(a, b string) *CombineRule {
	for i := range CombineRules {
		r := &CombineRules[i]
		if (r.A == a && r.B == b) || (r.A == b && r.B == a) {
			return r
		}
	}
	return nil
}
