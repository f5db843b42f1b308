// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/mcross/shadowcircuit/types"
)

var directionExpansions = map[string]string{
	"n":  "north",
	"s":  "south",
	"e":  "east",
	"w":  "west",
	"u":  "up",
	"d":  "down",
	"in": "inside",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true, "inside": true, "out": true,
	"hatch": true,
}

var verbAliases = map[string]string{
	// Look / Examine
	"l":       "look",
	"x":       "examine",
	"inspect": "examine",
	"check":   "examine",
	"study":   "examine",
	"search":  "examine",

	// Movement
	"walk":    "go",
	"run":     "go",
	"move":    "go",
	"head":    "go",
	"proceed": "go",
	"travel":  "go",

	// Take / Get
	"get":  "take",
	"grab": "take",
	"hold": "take",

	// Drop
	"discard": "drop",
	"leave":   "drop",

	// Talk / Dialogue
	"ask":      "talk",
	"speak":    "talk",
	"chat":     "talk",
	"converse": "talk",

	// Open / Close
	"shut": "close",

	// Give
	"offer": "give",
	"hand":  "give",

	// Senses
	"sniff": "smell",
	"hear":  "listen",

	// Vampiric
	"hypnotize": "mesmerize",
	"charm":     "mesmerize",
	"feed":      "bite",
	"drink":     "bite",

	// Crafting
	"make": "craft",
	"brew": "craft",
	"mix":  "combine",

	// Miscellaneous
	"inv":   "inventory",
	"i":     "inventory",
	"z":     "wait",
	"score": "stats",
	"q":     "quit",
	"exit":  "quit",
}

var prepositions = map[string]bool{
	"on": true, "at": true, "to": true,
	"with": true, "about": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "inside", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := words[1:]

	// "go n" and friends still need direction expansion.
	if verb == "go" && len(rest) == 1 {
		if dir, ok := directionExpansions[rest[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
	}

	// Strip articles ("the", "a", "an").
	rest = stripArticles(rest)

	// Use the first preposition as a delimiter between object and target.
	object, prep, target := splitOnPreposition(rest)

	return types.Intent{
		Verb:   verb,
		Object: object,
		Prep:   prep,
		Target: target,
	}
}

// expandMultiWordVerbs handles "look at", "pick up", "enter code" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" || words[1] == "in" || words[1] == "under" {
			return append([]string{"examine"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "talk", "speak", "chat", "ask":
		if words[1] == "to" || words[1] == "with" {
			return append([]string{words[0]}, words[2:]...)
		}
	case "enter":
		// "enter code 1207" is the keypad verb; bare "enter" is movement.
		if words[1] == "code" {
			return append([]string{"code"}, words[2:]...)
		}
		return append([]string{"go", "inside"}, words[2:]...)
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// splitOnPreposition splits words on the first preposition. Words before
// it become the object, words after become the target. If no preposition
// is found, all words become the object.
func splitOnPreposition(words []string) (object, prep, target string) {
	for i, w := range words {
		if prepositions[w] {
			object = strings.Join(words[:i], " ")
			target = strings.Join(words[i+1:], " ")
			return object, w, target
		}
	}
	return strings.Join(words, " "), "", ""
}
