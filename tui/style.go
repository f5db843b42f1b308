package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("53")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("161"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleRoomTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleEnding = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("161"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindRoomTitle
	kindYouSee
	kindExits
	kindDialogue
	kindSystem
	kindError
	kindEnding
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return kindRoomTitle
	case strings.HasPrefix(line, "**ENDING"), strings.HasPrefix(line, "═"):
		return kindEnding
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "You see:"), strings.HasPrefix(line, "Present:"):
		return kindYouSee
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case strings.HasPrefix(line, "You don't see"),
		strings.HasPrefix(line, "You can't"),
		strings.HasPrefix(line, "You don't have"):
		return kindError
	case containsQuotedSpeech(line):
		return kindDialogue
	default:
		return kindRoomDesc
	}
}

// containsQuotedSpeech checks if a line contains NPC dialogue in single quotes.
func containsQuotedSpeech(line string) bool {
	inQuote := false
	quoteLen := 0
	for _, r := range line {
		if r == '\'' {
			if inQuote && quoteLen > 5 {
				return true
			}
			inQuote = !inQuote
			quoteLen = 0
		} else if inQuote {
			quoteLen++
		}
	}
	return false
}

// styledYouSee renders "You see: item1, item2." with item names bold.
func styledYouSee(line string) string {
	for _, prefix := range []string{"You see: ", "Present: "} {
		if strings.HasPrefix(line, prefix) {
			return styleRoomDesc.Render(prefix) + styleYouSee.Render(line[len(prefix):])
		}
	}
	return styleRoomDesc.Render(line)
}

// styledRoomTitle renders a "**NAME**" line bold, without the markers.
func styledRoomTitle(line string) string {
	return styleRoomTitle.Render(strings.Trim(line, "*"))
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
