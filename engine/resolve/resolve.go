// Package resolve maps entity names from parsed intents to entity IDs.
package resolve

import (
	"fmt"
	"strings"

	"github.com/mcross/shadowcircuit/engine/world"
)

// Kind classifies what a name resolved to.
type Kind int

const (
	KindItem Kind = iota
	KindNPC
	KindFeature
)

// Entity is a resolved reference.
type Entity struct {
	Kind Kind
	ID   string
}

// AmbiguityError indicates multiple entities matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("which %s? (%s)", e.Name, strings.Join(e.Candidates, ", "))
}

// NotFoundError indicates no entity matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("You don't see any %s here.", e.Name)
}

// Name resolves a noun phrase against what the player can currently see.
// Search order is fixed: carried items, then items in the room, then NPCs
// in the room, then room features. The first tier with any match wins;
// within a tier an exact name match beats substring matches.
func Name(s *world.State, name string) (Entity, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return Entity{}, &NotFoundError{Name: name}
	}
	here := s.Player.Location

	tiers := []struct {
		kind Kind
		ids  []string
	}{
		{KindItem, s.Player.Inventory},
		{KindItem, s.RoomItems(here)},
		{KindNPC, s.RoomNPCs(here)},
		{KindFeature, featureIDs(s, here)},
	}

	for _, tier := range tiers {
		var exact, partial []string
		for _, id := range tier.ids {
			switch matchName(query, id, displayName(s, tier.kind, id)) {
			case matchExact:
				exact = append(exact, id)
			case matchPartial:
				partial = append(partial, id)
			}
		}
		matches := exact
		if len(matches) == 0 {
			matches = partial
		}
		switch len(matches) {
		case 0:
			continue
		case 1:
			return Entity{Kind: tier.kind, ID: matches[0]}, nil
		default:
			var names []string
			for _, id := range matches {
				names = append(names, displayName(s, tier.kind, id))
			}
			return Entity{}, &AmbiguityError{Name: name, Candidates: names}
		}
	}

	return Entity{}, &NotFoundError{Name: name}
}

type matchQuality int

const (
	matchNone matchQuality = iota
	matchPartial
	matchExact
)

// matchName grades how well a query names an entity. IDs match after
// underscore normalization; display names match exactly or by substring.
func matchName(query, id, display string) matchQuality {
	displayLower := strings.ToLower(display)
	if query == displayLower {
		return matchExact
	}
	idLower := strings.ToLower(id)
	if query == idLower || strings.ReplaceAll(query, " ", "_") == idLower {
		return matchExact
	}
	if strings.Contains(displayLower, query) {
		return matchPartial
	}
	return matchNone
}

// displayName returns what an entity is called in output. Features have
// no definition record; their ID doubles as their name.
func displayName(s *world.State, kind Kind, id string) string {
	switch kind {
	case KindItem:
		if it, ok := s.Items[id]; ok {
			return it.Name
		}
	case KindNPC:
		if n, ok := s.NPCs[id]; ok {
			return n.Name
		}
	}
	return strings.ReplaceAll(id, "_", " ")
}

func featureIDs(s *world.State, roomID string) []string {
	room, ok := s.Rooms[roomID]
	if !ok {
		return nil
	}
	return room.Features
}
