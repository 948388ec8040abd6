package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typestorm/internal/core"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyNavigation(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeMsg('a'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%s) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToFrameLetters(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, r := range "storm" {
		if quit := km.MapKeyToFrame(runeMsg(r), &frame); quit {
			t.Fatalf("letter %q reported as quit", r)
		}
	}

	if got := string(frame.Letters); got != "storm" {
		t.Errorf("frame letters = %q, want %q", got, "storm")
	}
}

func TestLocaleRemaps(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  rune
		want rune
	}{
		{';', 'ö'},
		{'\'', 'ä'},
		{'[', 'å'},
	}
	for _, tt := range tests {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(runeMsg(tt.key), &frame)
		if len(frame.Letters) != 1 || frame.Letters[0] != tt.want {
			t.Errorf("key %q mapped to %q, want %q", tt.key, frame.Letters, tt.want)
		}
	}

	// unmapped punctuation stays filtered out
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeMsg(','), &frame)
	if len(frame.Letters) != 0 {
		t.Errorf("',' should not produce a letter, got %q", frame.Letters)
	}
}

func TestUppercaseLettersLowered(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeMsg('S'), &frame)
	if len(frame.Letters) != 1 || frame.Letters[0] != 's' {
		t.Errorf("'S' mapped to %q, want 's'", frame.Letters)
	}
}

func TestQuitKeyReported(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c not reported as quit")
	}
	if !frame.Has(core.ActionQuit) {
		t.Error("ctrl+c did not set the quit action")
	}
}
