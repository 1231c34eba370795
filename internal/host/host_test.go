package host_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// recordingSaver counts saves and can be told to fail.
type recordingSaver struct {
	saves int
	err   error
}

func (r *recordingSaver) Save(*model.Store) error {
	r.saves++
	return r.err
}

func titles(nodes []model.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Title
	}
	return out
}

func TestBookmarkHost_CreateMoveRemove(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	h := host.NewBookmarkHost(nil, saver)

	folder, err := h.Create(ctx, model.NewNodeParams{Title: "Website Feed", ParentID: model.UnfiledID})
	assert.NilError(t, err)
	assert.Assert(t, folder.IsFolder())

	for _, title := range []string{"A", "B", "C"} {
		_, err := h.Create(ctx, model.NewNodeParams{Title: title, URL: "https://" + title, ParentID: folder.ID})
		assert.NilError(t, err)
	}

	children, err := h.GetChildren(ctx, folder.ID)
	assert.NilError(t, err)
	assert.DeepEqual(t, titles(children), []string{"A", "B", "C"})

	assert.NilError(t, h.Move(ctx, children[2].ID, 0))
	children, err = h.GetChildren(ctx, folder.ID)
	assert.NilError(t, err)
	assert.DeepEqual(t, titles(children), []string{"C", "A", "B"})

	assert.NilError(t, h.Remove(ctx, children[1].ID))
	children, err = h.GetChildren(ctx, folder.ID)
	assert.NilError(t, err)
	assert.DeepEqual(t, titles(children), []string{"C", "B"})

	// 4 creates, 1 move, 1 remove
	assert.Equal(t, saver.saves, 6)
}

func TestBookmarkHost_Errors(t *testing.T) {
	ctx := context.Background()
	h := host.NewMemoryFolderStore()

	_, err := h.GetChildren(ctx, "missing")
	assert.Assert(t, errors.Is(err, model.ErrNotFound))

	_, err = h.Create(ctx, model.NewNodeParams{Title: "x", ParentID: "missing"})
	assert.Assert(t, errors.Is(err, model.ErrNotFound))

	assert.Assert(t, errors.Is(h.Move(ctx, "missing", 0), model.ErrNotFound))
	assert.Assert(t, errors.Is(h.Remove(ctx, "missing"), model.ErrNotFound))
	assert.ErrorContains(t, h.Remove(ctx, model.UnfiledID), "builtin")
}

func TestBookmarkHost_BuiltinFoldersStayPut(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	h := host.NewBookmarkHost(nil, saver)

	before, err := h.GetChildren(ctx, model.RootID)
	assert.NilError(t, err)

	for _, id := range []string{model.UnfiledID, model.ToolbarID, model.RootID} {
		assert.ErrorContains(t, h.Move(ctx, id, 0), "builtin")
	}

	after, err := h.GetChildren(ctx, model.RootID)
	assert.NilError(t, err)
	assert.DeepEqual(t, titles(after), titles(before))
	assert.Equal(t, saver.saves, 0)
}

func TestBookmarkHost_SaveError(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	h := host.NewBookmarkHost(model.NewStore(), saver)

	_, err := h.Create(context.Background(), model.NewNodeParams{Title: "x", ParentID: model.UnfiledID})
	assert.ErrorContains(t, err, "disk full")
}

func TestMemorySettings(t *testing.T) {
	ctx := context.Background()
	s := host.NewMemorySettings()

	_, ok, err := s.Get(ctx, "profile")
	assert.NilError(t, err)
	assert.Assert(t, !ok)

	value := json.RawMessage(`"2"`)
	assert.NilError(t, s.Set(ctx, "profile", value))
	value[1] = '9' // stored copy is independent

	raw, ok, err := s.Get(ctx, "profile")
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Equal(t, string(raw), `"2"`)
}
