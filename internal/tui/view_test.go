package tui_test

import (
	"fmt"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/tui"
	"github.com/nikbrunner/feed/internal/tui/layout"
)

func render(app tui.App) string {
	return layout.StripANSI(app.View())
}

func TestView_BeforeLoad(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{})
	out := render(fx.app(80, 24))

	assert.Check(t, is.Contains(out, "Website Feed"))
	assert.Check(t, is.Contains(out, "Loading…"))
}

func TestView_Member(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{URL: "https://b.example", Title: "Bee"})
	fx.fill(t, "1", "https://a.example", "https://b.example")
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, is.Contains(out, "Bee"))
	assert.Check(t, is.Contains(out, "https://b.example"))
	assert.Check(t, is.Contains(out, "Remove site from list"))
	assert.Check(t, is.Contains(out, "Page 2 of 2"))
	assert.Check(t, is.Contains(out, "1  Page https://a.example"))
	assert.Check(t, is.Contains(out, "2  Page https://b.example"))
	assert.Check(t, is.Contains(out, "a:remove"))
}

func TestView_NotAMember(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{URL: "https://go.dev", Title: "Go"})
	fx.fill(t, "1", "https://a.example")
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, is.Contains(out, "Add site to list"))
	assert.Check(t, is.Contains(out, "Page N/A of 1"))
	assert.Check(t, is.Contains(out, "a:add"))
}

func TestView_EmptyList(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{})
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, is.Contains(out, "No page in the active tab"))
	assert.Check(t, is.Contains(out, "No pages in list 1 yet"))
	assert.Check(t, is.Contains(out, "Page N/A of 0"))
}

func TestView_ProfileTabs(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{})
	fx.fill(t, "reading")
	out := render(start(t, fx.app(80, 24)))

	header := strings.SplitN(strings.TrimSpace(out), "\n", 2)[0]
	for _, name := range []string{"1", "2", "3", "4", "reading"} {
		assert.Check(t, is.Contains(header, name))
	}
}

func TestView_LongURLIsShortened(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("x", 200) + "/end"
	fx := newFixture(t, nil, host.Tab{URL: long})
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, !strings.Contains(out, long))
	assert.Check(t, is.Contains(out, "https://exa"))
	assert.Check(t, is.Contains(out, "/end"))
	for _, line := range strings.Split(out, "\n") {
		assert.Check(t, layout.VisibleLength(line) <= 80, line)
	}
}

func TestView_ListScrollsWithCursor(t *testing.T) {
	urls := make([]string, 30)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://s.example/%d", i)
	}
	fx := newFixture(t, nil, host.Tab{URL: urls[29]})
	fx.fill(t, "1", urls...)
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, is.Contains(out, "30  Page "+urls[29]))
	assert.Check(t, !strings.Contains(out, " 1  Page "+urls[0]))
}

func TestView_GotoField(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{URL: "https://a.example"})
	fx.fill(t, "1", "https://a.example", "https://b.example")
	out := render(send(t, start(t, fx.app(80, 24)), ":"))

	assert.Check(t, is.Contains(out, "Go to page"))
	assert.Check(t, is.Contains(out, "of 2"))
	assert.Check(t, is.Contains(out, "Enter:go"))
}

func TestView_ProfileChooser(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{})
	out := render(send(t, start(t, fx.app(80, 24)), "p"))

	assert.Check(t, is.Contains(out, "Choose profile"))
	assert.Check(t, is.Contains(out, "1 *"))
}

func TestView_Help(t *testing.T) {
	fx := newFixture(t, nil, host.Tab{})
	out := render(send(t, start(t, fx.app(100, 30)), "?"))

	assert.Check(t, is.Contains(out, "add/remove site"))
	assert.Check(t, is.Contains(out, "random page"))
	assert.Check(t, is.Contains(out, "[?/esc] close"))
}

func TestView_ErrorMessage(t *testing.T) {
	fx := newFixture(t, brokenTabs{}, host.Tab{})
	out := render(start(t, fx.app(80, 24)))

	assert.Check(t, is.Contains(out, "✗ browser went away"))
}
