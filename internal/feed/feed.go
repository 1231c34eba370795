package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// profileKey holds the last selected profile in the settings store.
const profileKey = "profile"

// Feed wires the registry, membership, navigator and sampler to the host
// and exposes the operations a UI calls. It keeps no state between calls:
// every operation resolves the profile folder afresh.
type Feed struct {
	registry       *Registry
	membership     *Membership
	navigator      *Navigator
	sampler        *Sampler
	tabs           host.TabAccessor
	settings       host.SettingsStore
	defaultProfile string
	log            *zap.Logger
}

// Params holds parameters for creating a Feed.
type Params struct {
	Folders  host.FolderStore
	Tabs     host.TabAccessor
	Settings host.SettingsStore

	RootTitle      string
	ParentFolderID string
	ProfileMin     int
	ProfileMax     int
	DefaultProfile string // used until a profile is selected; default "1"

	Now  func() time.Time
	Rand *rand.Rand
	Log  *zap.Logger
}

// New creates a Feed.
func New(params Params) *Feed {
	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}
	defaultProfile := params.DefaultProfile
	if defaultProfile == "" {
		defaultProfile = "1"
	}

	return &Feed{
		registry: NewRegistry(RegistryParams{
			Folders:    params.Folders,
			RootTitle:  params.RootTitle,
			ParentID:   params.ParentFolderID,
			ProfileMin: params.ProfileMin,
			ProfileMax: params.ProfileMax,
			Log:        log,
		}),
		membership: NewMembership(params.Folders),
		navigator:  NewNavigator(params.Folders, log),
		sampler: NewSampler(SamplerParams{
			Settings: params.Settings,
			Now:      params.Now,
			Rand:     params.Rand,
			Log:      log,
		}),
		tabs:           params.Tabs,
		settings:       params.Settings,
		defaultProfile: defaultProfile,
		log:            log,
	}
}

// Registry returns the folder registry.
func (f *Feed) Registry() *Registry { return f.registry }

// Membership returns the membership store.
func (f *Feed) Membership() *Membership { return f.membership }

// Navigator returns the sequence navigator.
func (f *Feed) Navigator() *Navigator { return f.navigator }

// Sampler returns the random sampler.
func (f *Feed) Sampler() *Sampler { return f.sampler }

// ActiveProfile returns the last selected profile, or the default profile.
func (f *Feed) ActiveProfile(ctx context.Context) (string, error) {
	raw, ok, err := f.settings.Get(ctx, profileKey)
	if err != nil {
		return "", fmt.Errorf("load active profile: %w", err)
	}
	if !ok {
		return f.defaultProfile, nil
	}

	var profile string
	if err := json.Unmarshal(raw, &profile); err != nil || profile == "" {
		f.log.Warn("ignoring stored profile", zap.ByteString("value", raw))
		return f.defaultProfile, nil
	}
	return profile, nil
}

// SelectProfile persists profile as the active profile.
func (f *Feed) SelectProfile(ctx context.Context, profile string) error {
	if profile == "" {
		return errors.New("select profile: empty name")
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := f.settings.Set(ctx, profileKey, raw); err != nil {
		return fmt.Errorf("save active profile: %w", err)
	}
	return nil
}

// Profiles lists existing profile folders.
func (f *Feed) Profiles(ctx context.Context) ([]string, error) {
	return f.registry.Profiles(ctx)
}

// ProfileOptions returns the profiles a user can pick: the numbered range,
// then any other existing profile folders in folder order.
func (f *Feed) ProfileOptions(ctx context.Context) ([]string, error) {
	existing, err := f.registry.Profiles(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, f.registry.profileMax-f.registry.profileMin+1+len(existing))
	seen := make(map[string]bool)
	for n := f.registry.profileMin; n <= f.registry.profileMax; n++ {
		name := strconv.Itoa(n)
		options = append(options, name)
		seen[name] = true
	}
	for _, name := range existing {
		if !seen[name] {
			options = append(options, name)
			seen[name] = true
		}
	}
	return options, nil
}

// Status describes the active tab relative to a profile list.
type Status struct {
	Profile  string
	FolderID string
	Tab      host.Tab
	Member   *model.Node // the tab's bookmark, nil when not a member
	Position Position
	Total    int
}

// IsMember returns true if the active tab is in the list.
func (s Status) IsMember() bool {
	return s.Position.IsMember()
}

// ButtonLabel returns the add/remove button text.
func (s Status) ButtonLabel() string {
	if s.IsMember() {
		return "Remove site from list"
	}
	return "Add site to list"
}

// PageInfo returns the "of N" suffix shown next to the page field.
func (s Status) PageInfo() string {
	return fmt.Sprintf("of %d", s.Total)
}

// PageNumber returns the 1-based page of the active tab, or "N/A".
func (s Status) PageNumber() string {
	if !s.IsMember() {
		return "N/A"
	}
	return fmt.Sprintf("%d", int(s.Position)+1)
}

// PageLabel returns "current of total", or "N/A" for a page outside the list.
func (s Status) PageLabel() string {
	if !s.IsMember() {
		return "N/A"
	}
	return s.PageNumber() + " " + s.PageInfo()
}

// Status resolves profile's folder and locates the active tab in it.
func (f *Feed) Status(ctx context.Context, profile string) (Status, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return Status{}, err
	}
	tab, err := f.tabs.ActiveTab(ctx)
	if err != nil {
		return Status{}, err
	}
	bookmarks, err := f.navigator.Bookmarks(ctx, folderID)
	if err != nil {
		return Status{}, err
	}

	status := Status{
		Profile:  profile,
		FolderID: folderID,
		Tab:      tab,
		Position: positionIn(bookmarks, tab.URL),
		Total:    len(bookmarks),
	}
	if status.IsMember() {
		status.Member = &bookmarks[status.Position]
	}
	return status, nil
}

// Toggle adds the active tab to profile's list, or removes it.
// A tab without URL is left alone.
func (f *Feed) Toggle(ctx context.Context, profile string) (ToggleResult, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return Unchanged, err
	}
	tab, err := f.tabs.ActiveTab(ctx)
	if err != nil {
		return Unchanged, err
	}
	if tab.URL == "" {
		f.log.Info("active tab has no URL", zap.String("tab", tab.ID))
		return Unchanged, nil
	}

	result, err := f.membership.Toggle(ctx, folderID, Page{Title: tab.Title, URL: tab.URL})
	if err != nil {
		return Unchanged, err
	}
	f.log.Info("toggled page",
		zap.String("profile", profile),
		zap.String("url", tab.URL),
		zap.Stringer("result", result))
	return result, nil
}

// Step loads the previous or next bookmark of profile's list into the active
// tab. Returns the target, or nil when the list is empty.
func (f *Feed) Step(ctx context.Context, profile string, dir Direction) (*model.Node, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return nil, err
	}
	tab, err := f.tabs.ActiveTab(ctx)
	if err != nil {
		return nil, err
	}

	target, err := f.navigator.Step(ctx, folderID, tab.URL, dir)
	if err != nil || target == nil {
		return nil, err
	}
	return target, f.tabs.SetTabURL(ctx, tab.ID, target.URL)
}

// Goto loads the page named by raw ("3", "0", "abc", ...) into the active
// tab. Returns the target, or nil when the list is empty.
func (f *Feed) Goto(ctx context.Context, profile, raw string) (*model.Node, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return nil, err
	}
	tab, err := f.tabs.ActiveTab(ctx)
	if err != nil {
		return nil, err
	}

	target, err := f.navigator.Goto(ctx, folderID, ParsePageRequest(raw))
	if err != nil || target == nil {
		return nil, err
	}
	return target, f.tabs.SetTabURL(ctx, tab.ID, target.URL)
}

// Random picks the next bookmark of profile's random bag. When the active tab
// is itself in the list the pick replaces it, otherwise it opens in a new
// tab. Returns nil when the list is empty.
func (f *Feed) Random(ctx context.Context, profile string) (*model.Node, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return nil, err
	}
	bookmarks, err := f.navigator.Bookmarks(ctx, folderID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}
	id, err := f.sampler.NextPick(ctx, profile, ids)
	if err != nil || id == "" {
		return nil, err
	}

	var target *model.Node
	for i := range bookmarks {
		if bookmarks[i].ID == id {
			target = &bookmarks[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("random pick %q: %w", id, model.ErrNotFound)
	}

	tab, err := f.tabs.ActiveTab(ctx)
	if err != nil {
		return nil, err
	}
	if positionIn(bookmarks, tab.URL).IsMember() {
		return target, f.tabs.SetTabURL(ctx, tab.ID, target.URL)
	}
	return target, f.tabs.OpenTab(ctx, target.URL)
}

// Bookmarks returns profile's list in order.
func (f *Feed) Bookmarks(ctx context.Context, profile string) ([]model.Node, error) {
	folderID, err := f.registry.EnsureProfileFolder(ctx, profile)
	if err != nil {
		return nil, err
	}
	return f.navigator.Bookmarks(ctx, folderID)
}

// Open shows url in a new tab.
func (f *Feed) Open(ctx context.Context, url string) error {
	return f.tabs.OpenTab(ctx, url)
}
