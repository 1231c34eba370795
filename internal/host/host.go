// Package host defines the narrow interfaces the feed core uses to reach the
// bookmark tree, the browser tabs and the settings store, plus adapters that
// implement them over the local model.
package host

import (
	"context"
	"encoding/json"

	"github.com/nikbrunner/feed/internal/model"
)

// FolderStore reads and mutates the bookmark tree.
type FolderStore interface {
	// GetChildren returns the direct children of folderID in order.
	GetChildren(ctx context.Context, folderID string) ([]model.Node, error)
	// Create appends a folder (empty URL) or bookmark as the last child of ParentID.
	Create(ctx context.Context, params model.NewNodeParams) (model.Node, error)
	// Remove deletes a node and everything below it.
	Remove(ctx context.Context, id string) error
	// Move repositions a node among its siblings. index is counted after the
	// node has been detached from the sibling list.
	Move(ctx context.Context, id string, index int) error
}

// Tab is a browser tab as seen by the feed.
type Tab struct {
	ID    string
	URL   string
	Title string
}

// TabAccessor reads the active tab and navigates tabs.
type TabAccessor interface {
	ActiveTab(ctx context.Context) (Tab, error)
	SetTabURL(ctx context.Context, tabID, url string) error
	OpenTab(ctx context.Context, url string) error
}

// SettingsStore is a small key-value store for extension-local state.
// Values are JSON documents.
type SettingsStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}
