// Package feed implements profile reading lists on top of a bookmark tree:
// finding profile folders, toggling membership, stepping through a list and
// sampling it at random without repeats.
package feed

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// Registry finds or creates the root folder and per-profile folders, and
// keeps numbered profile folders in ascending order.
type Registry struct {
	folders    host.FolderStore
	rootTitle  string
	parentID   string
	profileMin int
	profileMax int
	log        *zap.Logger
}

// RegistryParams holds parameters for creating a Registry.
type RegistryParams struct {
	Folders    host.FolderStore
	RootTitle  string // default "Website Feed"
	ParentID   string // default model.UnfiledID
	ProfileMin int    // numbered profiles sorted: [ProfileMin, ProfileMax]
	ProfileMax int    // both zero = 1..4
	Log        *zap.Logger
}

// NewRegistry creates a Registry, filling in defaults.
func NewRegistry(params RegistryParams) *Registry {
	r := &Registry{
		folders:    params.Folders,
		rootTitle:  params.RootTitle,
		parentID:   params.ParentID,
		profileMin: params.ProfileMin,
		profileMax: params.ProfileMax,
		log:        params.Log,
	}
	if r.rootTitle == "" {
		r.rootTitle = "Website Feed"
	}
	if r.parentID == "" {
		r.parentID = model.UnfiledID
	}
	if r.profileMin == 0 && r.profileMax == 0 {
		r.profileMin, r.profileMax = 1, 4
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

// EnsureProfileFolder returns the id of the folder for profile, creating the
// root and profile folders as needed, and re-sorts numbered profile folders.
func (r *Registry) EnsureProfileFolder(ctx context.Context, profile string) (string, error) {
	root, err := r.RootFolder(ctx)
	if err != nil {
		return "", err
	}

	folder, err := r.getOrCreateFolder(ctx, root, profile)
	if err != nil {
		return "", err
	}

	if _, err := r.SortProfileFolders(ctx, root); err != nil {
		return "", err
	}
	return folder.ID, nil
}

// RootFolder returns the id of the root folder, creating it if missing.
func (r *Registry) RootFolder(ctx context.Context) (string, error) {
	root, err := r.getOrCreateFolder(ctx, r.parentID, r.rootTitle)
	if err != nil {
		return "", err
	}
	return root.ID, nil
}

// Profiles lists the titles of all profile folders under the root, in
// folder order. Nothing is created when the root is missing.
func (r *Registry) Profiles(ctx context.Context) ([]string, error) {
	children, err := r.folders.GetChildren(ctx, r.parentID)
	if err != nil {
		return nil, err
	}
	root := findFolder(children, r.rootTitle)
	if root == nil {
		return []string{}, nil
	}

	children, err = r.folders.GetChildren(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	profiles := []string{}
	for _, c := range children {
		if c.IsFolder() {
			profiles = append(profiles, c.Title)
		}
	}
	return profiles, nil
}

// SortProfileFolders orders the numbered profile folders of rootID by
// number. They are permuted within the positions they already occupy, so
// every other child keeps its index. Returns the number of moves issued;
// zero when the folders are already sorted.
func (r *Registry) SortProfileFolders(ctx context.Context, rootID string) (int, error) {
	children, err := r.folders.GetChildren(ctx, rootID)
	if err != nil {
		return 0, err
	}

	var slots []int
	var numbered []model.Node
	for i, c := range children {
		if _, ok := r.profileNumber(c); ok {
			slots = append(slots, i)
			numbered = append(numbered, c)
		}
	}

	sorted := slices.Clone(numbered)
	slices.SortStableFunc(sorted, func(a, b model.Node) int {
		na, _ := r.profileNumber(a)
		nb, _ := r.profileNumber(b)
		return cmp.Compare(na, nb)
	})
	if slices.EqualFunc(numbered, sorted, func(a, b model.Node) bool { return a.ID == b.ID }) {
		return 0, nil
	}

	moves := 0
	for i, want := range sorted {
		slot := slots[i]
		if children[slot].ID == want.ID {
			continue
		}
		from := slices.IndexFunc(children, func(n model.Node) bool { return n.ID == want.ID })
		displaced := children[slot]

		// Swap want and displaced with two moves. After the first move the
		// displaced folder sits right behind want.
		if err := r.folders.Move(ctx, want.ID, slot); err != nil {
			return moves, err
		}
		moves++
		if from != slot+1 {
			if err := r.folders.Move(ctx, displaced.ID, from); err != nil {
				return moves, err
			}
			moves++
		}
		children[slot], children[from] = want, displaced
	}

	r.log.Debug("sorted profile folders", zap.String("root", rootID), zap.Int("moves", moves))
	return moves, nil
}

// profileNumber reports the number of a numbered profile folder.
// Only canonical integers in range count ("2", not "02" or "+2").
func (r *Registry) profileNumber(n model.Node) (int, bool) {
	if !n.IsFolder() {
		return 0, false
	}
	num, err := strconv.Atoi(n.Title)
	if err != nil || strconv.Itoa(num) != n.Title {
		return 0, false
	}
	return num, num >= r.profileMin && num <= r.profileMax
}

// getOrCreateFolder finds the folder titled title under parentID by exact
// title, or creates it as the last child.
func (r *Registry) getOrCreateFolder(ctx context.Context, parentID, title string) (model.Node, error) {
	children, err := r.folders.GetChildren(ctx, parentID)
	if err != nil {
		return model.Node{}, err
	}
	if existing := findFolder(children, title); existing != nil {
		return *existing, nil
	}

	folder, err := r.folders.Create(ctx, model.NewNodeParams{Title: title, ParentID: parentID})
	if err != nil {
		return model.Node{}, fmt.Errorf("create folder %q: %w", title, err)
	}
	r.log.Info("created folder", zap.String("title", title), zap.String("id", folder.ID))
	return folder, nil
}

func findFolder(children []model.Node, title string) *model.Node {
	for i := range children {
		if children[i].IsFolder() && children[i].Title == title {
			return &children[i]
		}
	}
	return nil
}
