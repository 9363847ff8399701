package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/haptic-arena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"wasd a", runeKey('a'), core.ActionLeft},
		{"wasd d", runeKey('d'), core.ActionRight},
		{"wasd w", runeKey('w'), core.ActionUp},
		{"wasd s", runeKey('s'), core.ActionDown},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"vim l", runeKey('l'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim j", runeKey('j'), core.ActionDown},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionEscape},
		{"quit q", runeKey('q'), core.ActionClose},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionClose},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestIsDirection(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if !IsDirection(a) {
			t.Errorf("IsDirection(%v) = false, expected true", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionEscape, core.ActionClose} {
		if IsDirection(a) {
			t.Errorf("IsDirection(%v) = true, expected false", a)
		}
	}
}

func TestHelpListsMovement(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Fatal("ShortHelp() is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 7 {
		t.Errorf("FullHelp() has %d bindings, expected 7", total)
	}
}
