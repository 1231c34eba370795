package feed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// ErrOutOfRange is returned by Resolve for an ordinal outside the list.
var ErrOutOfRange = errors.New("ordinal out of range")

// Position is the 0-based ordinal of a page among a folder's bookmarks.
type Position int

// NotAMember marks a page that is not in the folder.
const NotAMember Position = -1

// IsMember returns true unless p is NotAMember.
func (p Position) IsMember() bool {
	return p != NotAMember
}

// Direction selects the neighbour Step moves to.
type Direction int

const (
	Prev Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// Navigator computes positions within a folder's bookmarks and resolves
// previous / next / goto targets. Folders nested in the folder are skipped.
type Navigator struct {
	folders host.FolderStore
	log     *zap.Logger
}

// NewNavigator creates a Navigator over folders. log may be nil.
func NewNavigator(folders host.FolderStore, log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{folders: folders, log: log}
}

// Bookmarks returns the URL-bearing children of folderID in store order.
func (n *Navigator) Bookmarks(ctx context.Context, folderID string) ([]model.Node, error) {
	children, err := n.folders.GetChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}
	bookmarks := make([]model.Node, 0, len(children))
	for _, c := range children {
		if c.IsBookmark() {
			bookmarks = append(bookmarks, c)
		}
	}
	return bookmarks, nil
}

// Count returns the number of bookmarks in folderID.
func (n *Navigator) Count(ctx context.Context, folderID string) (int, error) {
	bookmarks, err := n.Bookmarks(ctx, folderID)
	return len(bookmarks), err
}

// PositionOf returns the position of the first bookmark whose URL equals url,
// or NotAMember.
func (n *Navigator) PositionOf(ctx context.Context, folderID, url string) (Position, error) {
	bookmarks, err := n.Bookmarks(ctx, folderID)
	if err != nil {
		return NotAMember, err
	}
	return positionIn(bookmarks, url), nil
}

// Resolve returns the bookmark at the 0-based ordinal.
func (n *Navigator) Resolve(ctx context.Context, folderID string, ordinal int) (model.Node, error) {
	bookmarks, err := n.Bookmarks(ctx, folderID)
	if err != nil {
		return model.Node{}, err
	}
	if ordinal < 0 || ordinal >= len(bookmarks) {
		return model.Node{}, fmt.Errorf("resolve %d of %d: %w", ordinal, len(bookmarks), ErrOutOfRange)
	}
	return bookmarks[ordinal], nil
}

// Step returns the neighbour of url in direction dir. A page outside the
// folder steps to the first (Next) or last (Prev) bookmark. Stepping past
// either end stays on the boundary bookmark. Returns nil for an empty folder.
func (n *Navigator) Step(ctx context.Context, folderID, url string, dir Direction) (*model.Node, error) {
	bookmarks, err := n.Bookmarks(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		n.log.Info("no bookmarks to step through", zap.String("folder", folderID), zap.Stringer("direction", dir))
		return nil, nil
	}

	idx := stepIndex(positionIn(bookmarks, url), dir, len(bookmarks))
	return &bookmarks[idx], nil
}

// Goto resolves a page request against the folder's bookmarks.
// Returns nil for an empty folder.
func (n *Navigator) Goto(ctx context.Context, folderID string, req PageRequest) (*model.Node, error) {
	bookmarks, err := n.Bookmarks(ctx, folderID)
	if err != nil {
		return nil, err
	}
	idx := req.Index(len(bookmarks))
	if idx < 0 {
		n.log.Info("no bookmarks to go to", zap.String("folder", folderID))
		return nil, nil
	}
	return &bookmarks[idx], nil
}

func positionIn(bookmarks []model.Node, url string) Position {
	for i, b := range bookmarks {
		if b.URL == url {
			return Position(i)
		}
	}
	return NotAMember
}

// stepIndex computes the target index for a non-empty list of count entries.
func stepIndex(pos Position, dir Direction, count int) int {
	if !pos.IsMember() {
		if dir == Next {
			return 0
		}
		return count - 1
	}

	idx := int(pos) + 1
	if dir == Prev {
		idx = int(pos) - 1
	}
	return max(0, min(idx, count-1))
}
