package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// exitOrder fixes the display order of exits in the status bar.
var exitOrder = []string{"north", "south", "east", "west", "up", "down", "inside", "out", "hatch"}

// renderStatusBar produces a full-width inverted status line showing the
// current room, exits, resources, and the turn clock.
func (m Model) renderStatusBar() string {
	s := m.session.State
	room := s.CurrentRoom()

	roomName := s.Player.Location
	if room != nil {
		roomName = room.Name
	}

	var dirs []string
	if room != nil {
		for _, dir := range exitOrder {
			exit, ok := room.Exits[dir]
			if !ok {
				continue
			}
			if exit.Gate != "" {
				dirs = append(dirs, dir+"*")
			} else {
				dirs = append(dirs, dir)
			}
		}
	}
	exitStr := strings.Join(dirs, ",")

	left := fmt.Sprintf(" %s | Exits: %s", roomName, exitStr)
	right := fmt.Sprintf("H:%d W:%d Hu:%d | T:%d/%d ",
		s.Player.Health, s.Player.Will, s.Player.Hunger,
		s.Player.Turn, s.Player.MaxTurns)

	// Show carried item names if they fit, otherwise just the count.
	if n := len(s.Player.Inventory); n > 0 {
		var names []string
		for _, id := range s.Player.Inventory {
			names = append(names, s.Items[id].Name)
		}
		candidate := fmt.Sprintf("Inv: %s | %s", strings.Join(names, ", "), right)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | %s", n, right)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
