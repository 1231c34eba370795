package tui

import (
	"context"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/model"
	"github.com/nikbrunner/feed/internal/search"
	"github.com/nikbrunner/feed/internal/tui/layout"
)

// MessageType is the severity of the status line message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// App is the bubbletea model of the feed popup.
type App struct {
	feed         *feed.Feed
	ctx          context.Context
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	clipboard    func(string) error

	mode     Mode
	profile  string // "" until the active profile is loaded
	status   feed.Status
	items    []Item
	cursor   int
	loaded   bool
	profiles ProfileState
	gotoPage GotoState

	messageText string
	messageType MessageType

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Feed    *feed.Feed
	Context context.Context // optional, uses context.Background if nil
	Profile string          // optional, uses the stored active profile if empty

	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	copyFn := params.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	return App{
		feed:         params.Feed,
		ctx:          ctx,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		clipboard:    copyFn,
		profile:      params.Profile,
		status:       feed.Status{Position: feed.NotAMember},
		gotoPage:     NewGotoState(layoutConfig),
		width:        80,
		height:       24,
	}
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Profile returns the profile the popup shows.
func (a App) Profile() string { return a.profile }

// Status returns the last loaded status.
func (a App) Status() feed.Status { return a.status }

// Mode returns the current interaction mode.
func (a App) Mode() Mode { return a.mode }

// Cursor returns the selected list row.
func (a App) Cursor() int { return a.cursor }

// Message returns the status line text.
func (a App) Message() string { return a.messageText }

// loadedMsg carries a fresh snapshot of the profile list.
type loadedMsg struct {
	profile   string
	status    feed.Status
	bookmarks []model.Node
	options   []string
	err       error
}

// actionMsg reports the outcome of an operation; the list is reloaded after it.
type actionMsg struct {
	text string
	kind MessageType
	err  error
}

// profileMsg reports a persisted profile switch.
type profileMsg struct {
	profile string
	err     error
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.load(a.profile)
}

// load reads status, list and profile options for profile. An empty
// profile resolves to the stored active profile.
func (a App) load(profile string) tea.Cmd {
	f, ctx := a.feed, a.ctx
	return func() tea.Msg {
		if profile == "" {
			p, err := f.ActiveProfile(ctx)
			if err != nil {
				return loadedMsg{err: err}
			}
			profile = p
		}
		status, err := f.Status(ctx, profile)
		if err != nil {
			return loadedMsg{profile: profile, err: err}
		}
		bookmarks, err := f.Bookmarks(ctx, profile)
		if err != nil {
			return loadedMsg{profile: profile, err: err}
		}
		options, err := f.ProfileOptions(ctx)
		if err != nil {
			return loadedMsg{profile: profile, err: err}
		}
		return loadedMsg{profile: profile, status: status, bookmarks: bookmarks, options: options}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case loadedMsg:
		return a.applyLoaded(msg), nil

	case actionMsg:
		if msg.err != nil {
			a.setMessage(msg.err.Error(), MessageError)
		} else {
			a.setMessage(msg.text, msg.kind)
		}
		return a, a.load(a.profile)

	case profileMsg:
		if msg.err != nil {
			a.setMessage(msg.err.Error(), MessageError)
			return a, nil
		}
		a.profile = msg.profile
		a.cursor = 0
		a.setMessage("Profile "+msg.profile, MessageInfo)
		return a, a.load(msg.profile)

	case tea.KeyMsg:
		switch a.mode {
		case ModeGoto:
			return a.updateGoto(msg)
		case ModeProfile:
			return a.updateProfile(msg)
		case ModeHelp:
			if key.Matches(msg, a.keys.Help, a.keys.Cancel, a.keys.Quit) {
				a.mode = ModeNormal
			}
			return a, nil
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

func (a App) applyLoaded(msg loadedMsg) App {
	if msg.err != nil {
		if msg.profile != "" {
			a.profile = msg.profile
		}
		a.setMessage(msg.err.Error(), MessageError)
		return a
	}

	a.loaded = true
	a.profile = msg.profile
	a.status = msg.status
	a.items = itemsFrom(msg.bookmarks)
	a.profiles.Options = msg.options

	switch {
	case a.status.IsMember():
		a.cursor = int(a.status.Position)
	case len(a.items) == 0:
		a.cursor = 0
	default:
		a.cursor = min(a.cursor, len(a.items)-1)
	}
	return a
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.clearMessage()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0

	case key.Matches(msg, a.keys.Bottom):
		if len(a.items) > 0 {
			a.cursor = len(a.items) - 1
		}

	case key.Matches(msg, a.keys.Refresh):
		return a, a.load(a.profile)

	case !a.loaded:
		// Profile actions wait for the first load.

	case key.Matches(msg, a.keys.Toggle):
		return a, a.toggle()

	case key.Matches(msg, a.keys.Prev):
		return a, a.step(feed.Prev)

	case key.Matches(msg, a.keys.Next):
		return a, a.step(feed.Next)

	case key.Matches(msg, a.keys.Random):
		return a, a.random()

	case key.Matches(msg, a.keys.Goto):
		a.mode = ModeGoto
		value := ""
		if a.status.IsMember() {
			value = a.status.PageNumber()
		}
		a.gotoPage.Input.SetValue(value)
		a.gotoPage.Input.CursorEnd()
		return a, a.gotoPage.Input.Focus()

	case key.Matches(msg, a.keys.Open):
		if item, ok := a.selectedItem(); ok {
			return a, a.gotoRaw(strconv.Itoa(item.Page))
		}

	case key.Matches(msg, a.keys.OpenNew):
		if item, ok := a.selectedItem(); ok {
			return a, a.open(item)
		}

	case key.Matches(msg, a.keys.YankURL):
		if item, ok := a.selectedItem(); ok {
			if err := a.clipboard(item.URL()); err != nil {
				a.setMessage("Copy failed: "+err.Error(), MessageError)
			} else {
				a.setMessage("Copied "+item.URL(), MessageSuccess)
			}
		}

	case key.Matches(msg, a.keys.NextProfile):
		return a, a.selectProfile(a.profiles.Cycle(a.profile, 1))

	case key.Matches(msg, a.keys.PrevProfile):
		return a, a.selectProfile(a.profiles.Cycle(a.profile, -1))

	case key.Matches(msg, a.keys.Profiles):
		if len(a.profiles.Options) > 0 {
			a.mode = ModeProfile
			a.profiles.Idx = max(a.profiles.IndexOf(a.profile), 0)
		}
	}

	return a, nil
}

func (a App) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
		a.gotoPage.Reset()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		raw := a.gotoPage.Input.Value()
		a.mode = ModeNormal
		a.gotoPage.Reset()
		return a, a.gotoRaw(raw)
	}

	var cmd tea.Cmd
	a.gotoPage.Input, cmd = a.gotoPage.Input.Update(msg)
	return a, cmd
}

func (a App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel, a.keys.Quit):
		a.mode = ModeNormal

	case key.Matches(msg, a.keys.Down):
		if a.profiles.Idx < len(a.profiles.Options)-1 {
			a.profiles.Idx++
		}

	case key.Matches(msg, a.keys.Up):
		if a.profiles.Idx > 0 {
			a.profiles.Idx--
		}

	case key.Matches(msg, a.keys.Confirm):
		a.mode = ModeNormal
		if name := a.profiles.Current(); name != "" && name != a.profile {
			return a, a.selectProfile(name)
		}
	}
	return a, nil
}

func (a App) selectedItem() (Item, bool) {
	if a.cursor < 0 || a.cursor >= len(a.items) {
		return Item{}, false
	}
	return a.items[a.cursor], true
}

func (a *App) setMessage(text string, kind MessageType) {
	a.messageText = text
	a.messageType = kind
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

func (a App) toggle() tea.Cmd {
	f, ctx, profile := a.feed, a.ctx, a.profile
	return func() tea.Msg {
		result, err := f.Toggle(ctx, profile)
		if err != nil {
			return actionMsg{err: err}
		}
		switch result {
		case feed.Created:
			return actionMsg{text: "Added to list " + profile, kind: MessageSuccess}
		case feed.Removed:
			return actionMsg{text: "Removed from list " + profile, kind: MessageSuccess}
		default:
			return actionMsg{text: "Nothing to add: the tab has no URL", kind: MessageInfo}
		}
	}
}

// landed reports where navigation ended up.
func landed(target *model.Node, err error, prefix string) tea.Msg {
	if err != nil {
		return actionMsg{err: err}
	}
	if target == nil {
		return actionMsg{text: "The list is empty", kind: MessageInfo}
	}
	return actionMsg{text: prefix + search.Label(*target), kind: MessageInfo}
}

func (a App) step(dir feed.Direction) tea.Cmd {
	f, ctx, profile := a.feed, a.ctx, a.profile
	return func() tea.Msg {
		target, err := f.Step(ctx, profile, dir)
		return landed(target, err, "")
	}
}

func (a App) gotoRaw(raw string) tea.Cmd {
	f, ctx, profile := a.feed, a.ctx, a.profile
	return func() tea.Msg {
		target, err := f.Goto(ctx, profile, raw)
		return landed(target, err, "")
	}
}

func (a App) random() tea.Cmd {
	f, ctx, profile := a.feed, a.ctx, a.profile
	return func() tea.Msg {
		target, err := f.Random(ctx, profile)
		return landed(target, err, "Random: ")
	}
}

func (a App) open(item Item) tea.Cmd {
	f, ctx := a.feed, a.ctx
	return func() tea.Msg {
		if err := f.Open(ctx, item.URL()); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{text: "Opened " + item.Title() + " in a new tab", kind: MessageInfo}
	}
}

func (a App) selectProfile(name string) tea.Cmd {
	f, ctx := a.feed, a.ctx
	return func() tea.Msg {
		return profileMsg{profile: name, err: f.SelectProfile(ctx, name)}
	}
}
