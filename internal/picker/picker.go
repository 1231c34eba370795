// Package picker is a small bubbletea list for choosing one search result.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/feed/internal/model"
	"github.com/nikbrunner/feed/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Underline(true)

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Width(5).
			Align(lipgloss.Right)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Picker lets the user choose one of a profile's search results.
type Picker struct {
	results   []search.Result
	profile   string
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over results found for query in profile's list.
func New(results []search.Result, profile, query string) Picker {
	return Picker{
		results: results,
		profile: profile,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c", "q":
			p.cancelled = true
			return p, tea.Quit
		case "enter":
			if len(p.results) == 0 {
				p.cancelled = true
			} else {
				p.selected = true
			}
			return p, tea.Quit
		case "down", "j", "ctrl+n":
			p.cursor = min(p.cursor+1, max(len(p.results)-1, 0))
		case "up", "k", "ctrl+p":
			p.cursor = max(p.cursor-1, 0)
		case "g", "home":
			p.cursor = 0
		case "G", "end":
			p.cursor = max(len(p.results)-1, 0)
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Profile %s · %q (%d results)", p.profile, p.query, len(p.results))))
	b.WriteString("\n\n")

	for i, r := range p.results {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		page := pageStyle.Render(fmt.Sprintf("%d.", r.Page))
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, page, highlight(search.Label(*r.Bookmark), r.MatchedIndexes, style)))
		if r.Bookmark.Title != "" {
			b.WriteString(fmt.Sprintf("        %s\n", urlStyle.Render(r.Bookmark.URL)))
		}
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  g/G: top/bottom  Enter: open  q/Esc: cancel"))

	return b.String()
}

// highlight renders label with the matched runes emphasised.
func highlight(label string, matched []int, style lipgloss.Style) string {
	if len(matched) == 0 {
		return style.Render(label)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range label {
		if hit[i] {
			b.WriteString(matchStyle.Inherit(style).Render(string(r)))
		} else {
			b.WriteString(style.Render(string(r)))
		}
	}
	return b.String()
}

// Selected returns the chosen bookmark, or nil if cancelled.
func (p Picker) Selected() *model.Node {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
