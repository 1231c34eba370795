package feed

import (
	"context"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// ToggleResult reports what Toggle did.
type ToggleResult int

const (
	Unchanged ToggleResult = iota // nothing to toggle (e.g. tab without URL)
	Created
	Removed
)

func (t ToggleResult) String() string {
	switch t {
	case Created:
		return "created"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Page is a page reference that can be added to a folder.
type Page struct {
	Title string
	URL   string
}

// Membership answers and toggles whether a page is in a folder.
type Membership struct {
	folders host.FolderStore
}

// NewMembership creates a Membership over folders.
func NewMembership(folders host.FolderStore) *Membership {
	return &Membership{folders: folders}
}

// IsMember returns the folder's bookmark whose URL equals url exactly, or nil.
func (m *Membership) IsMember(ctx context.Context, folderID, url string) (*model.Node, error) {
	children, err := m.folders.GetChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}
	for i := range children {
		if children[i].IsBookmark() && children[i].URL == url {
			return &children[i], nil
		}
	}
	return nil, nil
}

// Toggle removes page from the folder if present, otherwise appends it as
// the last child.
func (m *Membership) Toggle(ctx context.Context, folderID string, page Page) (ToggleResult, error) {
	existing, err := m.IsMember(ctx, folderID, page.URL)
	if err != nil {
		return Unchanged, err
	}
	if existing != nil {
		if err := m.folders.Remove(ctx, existing.ID); err != nil {
			return Unchanged, err
		}
		return Removed, nil
	}

	if _, err := m.folders.Create(ctx, model.NewNodeParams{
		Title:    page.Title,
		URL:      page.URL,
		ParentID: folderID,
	}); err != nil {
		return Unchanged, err
	}
	return Created, nil
}
