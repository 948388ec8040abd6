package core

import "unicode"

// Action represents a semantic navigation action, abstracted from physical
// key presses. Letters are carried separately; see InputFrame.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, cycle menu selection up
	ActionDown           // Down arrow, cycle menu selection down
	ActionLeft           // Left arrow, cycle an option value down
	ActionRight          // Right arrow, cycle an option value up
	ActionConfirm        // Enter - confirm selection / apply options
	ActionBack           // Escape - back out of play/options
	ActionQuit           // Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input gathered during one simulation tick:
// navigation actions plus the ordered sequence of typed letters. Only
// lowercase letters ever enter the frame; the platform's key mapper is
// responsible for locale remaps and filtering.
type InputFrame struct {
	Actions map[Action]bool
	Letters []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a letter keystroke to the frame. Non-letter runes are
// dropped so the engine's typing-match machine only ever sees letters.
func (f *InputFrame) Type(r rune) {
	if !unicode.IsLetter(r) {
		return
	}
	f.Letters = append(f.Letters, unicode.ToLower(r))
}

// Clear resets all actions and letters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Letters = append(clone.Letters, f.Letters...)
	return clone
}
