package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the popup.
type Styles struct {
	App           lipgloss.Style
	Header        lipgloss.Style
	Profile       lipgloss.Style
	ProfileActive lipgloss.Style
	TabTitle      lipgloss.Style
	URL           lipgloss.Style
	Button        lipgloss.Style
	ButtonMember  lipgloss.Style // button while the site is in the list
	PageInfo      lipgloss.Style
	Divider       lipgloss.Style
	Item          lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemCurrent   lipgloss.Style // the entry open in the active tab
	Empty         lipgloss.Style
	Message       lipgloss.Style
	Error         lipgloss.Style
	Help          lipgloss.Style
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	warn := lipgloss.AdaptiveColor{Light: "#8A4A4A", Dark: "#AF7575"}    // errors, remove

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Profile: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		ProfileActive: lipgloss.NewStyle().
			Padding(0, 1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		TabTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		URL: lipgloss.NewStyle().
			Foreground(subtle),

		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 1),

		ButtonMember: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warn).
			Foreground(warn).
			Padding(0, 1),

		PageInfo: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(2),

		Divider: lipgloss.NewStyle().
			Foreground(subtle),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		ItemCurrent: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(accent).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Message: lipgloss.NewStyle().
			Foreground(accent),

		Error: lipgloss.NewStyle().
			Foreground(warn),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
