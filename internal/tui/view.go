package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/feed/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	if a.mode == ModeHelp {
		return a.renderHelpOverlay()
	}

	width := layout.CalculatePopupWidth(a.width, a.layoutConfig.Popup)

	var sections []string
	sections = append(sections, a.renderHeader())
	if !a.loaded {
		sections = append(sections, "", a.styles.Empty.Render("Loading…"))
	} else {
		sections = append(sections,
			"",
			a.renderTab(width),
			a.renderControls(),
			a.styles.Divider.Render(strings.Repeat("─", width)),
		)
		if a.mode == ModeProfile {
			sections = append(sections, a.renderProfileChooser(width))
		} else {
			sections = append(sections, a.renderList(width))
		}
	}
	if a.mode == ModeGoto {
		sections = append(sections, a.renderGotoLine())
	}
	sections = append(sections, a.renderHelpBar())

	return a.styles.App.Render(strings.Join(sections, "\n"))
}

// renderHeader renders the title and the profile tabs.
func (a App) renderHeader() string {
	var b strings.Builder
	b.WriteString(a.styles.Header.Render("Website Feed"))
	b.WriteString("  ")
	for _, name := range a.profiles.Options {
		if name == a.profile {
			b.WriteString(a.styles.ProfileActive.Render(name))
		} else {
			b.WriteString(a.styles.Profile.Render(name))
		}
	}
	if len(a.profiles.Options) == 0 && a.profile != "" {
		b.WriteString(a.styles.ProfileActive.Render(a.profile))
	}
	return b.String()
}

// renderTab renders the active tab's title and URL.
func (a App) renderTab(width int) string {
	tab := a.status.Tab
	if tab.URL == "" {
		return a.styles.Empty.Render("No page in the active tab")
	}
	title := tab.Title
	if title == "" {
		title = tab.URL
	}
	title, _ = layout.TruncateText(title, width, a.layoutConfig.Text)
	url := layout.TruncateMiddle(tab.URL, width, a.layoutConfig.Text)
	return a.styles.TabTitle.Render(title) + "\n" + a.styles.URL.Render(url)
}

// renderControls renders the add/remove button next to the page indicator.
func (a App) renderControls() string {
	buttonStyle := a.styles.Button
	if a.status.IsMember() {
		buttonStyle = a.styles.ButtonMember
	}
	button := buttonStyle.Render(a.status.ButtonLabel())
	page := a.styles.PageInfo.Render("Page " + a.status.PageNumber() + " " + a.status.PageInfo())
	return lipgloss.JoinHorizontal(lipgloss.Center, button, page)
}

// renderList renders the profile list around the cursor.
func (a App) renderList(width int) string {
	if len(a.items) == 0 {
		return a.styles.Empty.Render(fmt.Sprintf("No pages in list %s yet", a.profile))
	}

	height := layout.CalculateListHeight(a.height, a.layoutConfig.Popup)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.items), height)
	end := min(offset+height, len(a.items))

	numWidth := len(fmt.Sprint(len(a.items)))
	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		item := a.items[i]
		prefix := fmt.Sprintf("%*d  ", numWidth, item.Page)
		title, _ := layout.TruncateText(item.Title(), width-len(prefix)-1, a.layoutConfig.Text)
		line := prefix + title

		isCurrent := a.status.IsMember() && int(a.status.Position) == i
		switch {
		case i == a.cursor:
			lines = append(lines, a.styles.ItemSelected.Render(line))
		case isCurrent:
			lines = append(lines, a.styles.ItemCurrent.Render(line))
		default:
			lines = append(lines, a.styles.Item.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// renderProfileChooser renders the profile options in place of the list.
func (a App) renderProfileChooser(width int) string {
	lines := []string{a.styles.Header.Render("Choose profile")}
	for i, name := range a.profiles.Options {
		label, _ := layout.TruncateText(name, width-2, a.layoutConfig.Text)
		if name == a.profile {
			label += " *"
		}
		if i == a.profiles.Idx {
			lines = append(lines, a.styles.ItemSelected.Render(label))
		} else {
			lines = append(lines, a.styles.Item.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

// renderGotoLine renders the page field.
func (a App) renderGotoLine() string {
	return "Go to page " + a.gotoPage.Input.View() + " " + a.styles.PageInfo.UnsetPaddingLeft().Render(a.status.PageInfo())
}

// renderHelpBar renders the message line and the keyboard hints.
func (a App) renderHelpBar() string {
	lines := []string{""}
	if a.messageText != "" {
		lines[0] = a.renderMessageLine()
	}
	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}
	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Message.Render("✓ " + a.messageText)
	default:
		return a.styles.Message.Render(a.messageText)
	}
}

// renderHelpOverlay renders all key bindings in two columns.
func (a App) renderHelpOverlay() string {
	bindings := a.keys.helpBindings()
	half := (len(bindings) + 1) / 2

	column := func(from, to int) string {
		var b strings.Builder
		for _, binding := range bindings[from:to] {
			h := binding.Help()
			fmt.Fprintf(&b, "%s  %s\n", a.styles.HintKey.Render(fmt.Sprintf("%-9s", h.Key)), h.Desc)
		}
		return b.String()
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(32).Render(column(0, half)),
		"  ",
		column(half, len(bindings)),
	)
	body := a.styles.Header.Render("keys") + "\n\n" + cols + "\n" +
		a.styles.Help.Render("[?/esc] close")

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, a.styles.App.Render(body))
}
