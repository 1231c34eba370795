package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikbrunner/feed/internal/model"
)

// Saver persists the whole tree after a mutation.
type Saver interface {
	Save(store *model.Store) error
}

// BookmarkHost implements FolderStore over an in-memory model.Store,
// saving through Saver after every mutation.
type BookmarkHost struct {
	mu    sync.Mutex
	store *model.Store
	saver Saver // nil = memory only
}

// NewBookmarkHost creates a BookmarkHost. saver may be nil.
func NewBookmarkHost(store *model.Store, saver Saver) *BookmarkHost {
	if store == nil {
		store = model.NewStore()
	}
	return &BookmarkHost{store: store, saver: saver}
}

// NewMemoryFolderStore creates a FolderStore that never persists.
func NewMemoryFolderStore() *BookmarkHost {
	return NewBookmarkHost(model.NewStore(), nil)
}

// Store returns the underlying tree.
func (h *BookmarkHost) Store() *model.Store {
	return h.store
}

// GetChildren implements FolderStore.
func (h *BookmarkHost) GetChildren(_ context.Context, folderID string) ([]model.Node, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	folder := h.store.GetNodeByID(folderID)
	if folder == nil || !folder.IsFolder() {
		return nil, fmt.Errorf("get children of %q: %w", folderID, model.ErrNotFound)
	}
	return h.store.Children(folderID), nil
}

// Create implements FolderStore.
func (h *BookmarkHost) Create(_ context.Context, params model.NewNodeParams) (model.Node, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	node := model.NewNode(params)
	if err := h.store.Insert(node); err != nil {
		return model.Node{}, fmt.Errorf("create %q in %q: %w", params.Title, params.ParentID, err)
	}
	return node, h.save()
}

// Remove implements FolderStore. The fixed roots cannot be removed.
func (h *BookmarkHost) Remove(_ context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if model.IsBuiltin(id) {
		return fmt.Errorf("remove %q: builtin folder", id)
	}
	if err := h.store.Remove(id); err != nil {
		return fmt.Errorf("remove %q: %w", id, err)
	}
	return h.save()
}

// Move implements FolderStore. The fixed roots cannot be moved.
func (h *BookmarkHost) Move(_ context.Context, id string, index int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if model.IsBuiltin(id) {
		return fmt.Errorf("move %q: builtin folder", id)
	}
	if err := h.store.Move(id, index); err != nil {
		return fmt.Errorf("move %q: %w", id, err)
	}
	return h.save()
}

func (h *BookmarkHost) save() error {
	if h.saver == nil {
		return nil
	}
	return h.saver.Save(h.store)
}
