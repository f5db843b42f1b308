package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcross/shadowcircuit/engine/world"
	"github.com/mcross/shadowcircuit/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for referential integrity and consistency.
func validate(defs *world.Defs) error {
	ve := &ValidationError{}

	// Game metadata.
	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}
	if defs.Game.MaxTurns <= 0 {
		ve.Errors = append(ve.Errors, "Game.MaxTurns must be positive")
	}

	// Start room exists.
	if defs.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.Start is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", defs.Game.Start))
	}

	// Exit targets and gates valid.
	for roomID, room := range defs.Rooms {
		for dir, exit := range room.Exits {
			if _, ok := defs.Rooms[exit.To]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q", roomID, dir, exit.To))
			}
			if exit.Gate != "" {
				if _, ok := defs.Gates[exit.Gate]; !ok {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"room %q exit %q references undefined gate %q", roomID, dir, exit.Gate))
				}
			}
		}
		// Room features without a description degrade to a generic line.
		for _, f := range room.Features {
			if _, ok := defs.Features[f]; !ok {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"room %q feature %q has no Feature definition", roomID, f))
			}
		}
	}

	// Item locations are rooms or the reserved pseudo-locations.
	for itemID, item := range defs.Items {
		if item.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("item %q has no name", itemID))
		}
		switch item.Location {
		case types.LocInventory, types.LocNowhere:
		default:
			if _, ok := defs.Rooms[item.Location]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"item %q location %q is not a defined room", itemID, item.Location))
			}
		}
	}

	// NPC homes exist.
	for npcID, npc := range defs.NPCs {
		if npc.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("NPC %q has no name", npcID))
		}
		if _, ok := defs.Rooms[npc.Home]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"NPC %q home %q is not a defined room", npcID, npc.Home))
		}
	}

	// Hint lists attach to defined rooms.
	for roomID, hints := range defs.Hints {
		if _, ok := defs.Rooms[roomID]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"hints defined for undefined room %q", roomID))
		}
		if len(hints) == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"empty hint list for room %q", roomID))
		}
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
