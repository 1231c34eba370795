package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/feed/internal/tui/layout"
)

// Mode is the interaction mode of the popup.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeGoto         // typing a page number
	ModeProfile      // choosing a profile from the list
	ModeHelp
)

// GotoState holds the "go to page" field.
type GotoState struct {
	Input textinput.Model
}

// NewGotoState creates a GotoState with a static cursor.
func NewGotoState(cfg layout.LayoutConfig) GotoState {
	input := textinput.New()
	input.Placeholder = "page"
	input.CharLimit = cfg.Input.PageCharLimit
	input.Width = cfg.Input.PageWidth
	input.Cursor.SetMode(cursor.CursorStatic)
	return GotoState{Input: input}
}

// Reset clears the field for a new entry.
func (g *GotoState) Reset() {
	g.Input.Reset()
	g.Input.Blur()
}

// ProfileState holds the profile chooser.
type ProfileState struct {
	Options []string
	Idx     int
}

// Current returns the highlighted option, or "".
func (p ProfileState) Current() string {
	if p.Idx < 0 || p.Idx >= len(p.Options) {
		return ""
	}
	return p.Options[p.Idx]
}

// IndexOf returns the index of name among the options, or -1.
func (p ProfileState) IndexOf(name string) int {
	for i, o := range p.Options {
		if o == name {
			return i
		}
	}
	return -1
}

// Cycle returns the option delta steps away from name, wrapping around.
// An unknown name cycles from the first option.
func (p ProfileState) Cycle(name string, delta int) string {
	if len(p.Options) == 0 {
		return name
	}
	i := max(p.IndexOf(name), 0)
	n := len(p.Options)
	return p.Options[((i+delta)%n+n)%n]
}
