package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typestorm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to input frames.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	remaps map[rune]rune
}

// NewKeyMapper creates a key mapper with the locale punctuation remaps:
// on a US layout the keys holding Nordic letters produce ';', '\'' and '[',
// which map to ö, ä and å so those word lists stay typeable.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		remaps: map[rune]rune{
			';':  'ö',
			'\'': 'ä',
			'[':  'å',
		},
	}
}

// MapKey translates a key message to a navigation action.
// Returns ActionNone for letter keys; those go through MapKeyToFrame.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit
	case "up":
		return core.ActionUp
	case "down":
		return core.ActionDown
	case "left":
		return core.ActionLeft
	case "right":
		return core.ActionRight
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message: navigation
// keys set actions, single printable runes become typed letters after the
// locale remap. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if action := km.MapKey(msg); action != core.ActionNone {
		frame.Set(action)
		return action == core.ActionQuit
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if mapped, ok := km.remaps[r]; ok {
			r = mapped
		}
		frame.Type(r)
	}
	return false
}
