package feed_test

import (
	"context"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

func TestMembership_Toggle(t *testing.T) {
	ctx := context.Background()
	folders := host.NewMemoryFolderStore()
	folder, err := folders.Create(ctx, model.NewNodeParams{Title: "1", ParentID: model.UnfiledID})
	assert.NilError(t, err)
	_, err = folders.Create(ctx, model.NewNodeParams{Title: "A", URL: "https://a.example", ParentID: folder.ID})
	assert.NilError(t, err)

	m := feed.NewMembership(folders)
	page := feed.Page{Title: "Go", URL: "https://go.dev"}

	got, err := m.IsMember(ctx, folder.ID, page.URL)
	assert.NilError(t, err)
	assert.Assert(t, got == nil)

	result, err := m.Toggle(ctx, folder.ID, page)
	assert.NilError(t, err)
	assert.Equal(t, result, feed.Created)
	assert.Equal(t, result.String(), "created")

	got, err = m.IsMember(ctx, folder.ID, page.URL)
	assert.NilError(t, err)
	assert.Equal(t, got.Title, "Go")
	// Appended as the last child.
	assert.DeepEqual(t, childTitles(t, folders, folder.ID), []string{"A", "Go"})

	result, err = m.Toggle(ctx, folder.ID, page)
	assert.NilError(t, err)
	assert.Equal(t, result, feed.Removed)
	assert.DeepEqual(t, childTitles(t, folders, folder.ID), []string{"A"})
}

func TestMembership_IsMember_ExactURL(t *testing.T) {
	ctx := context.Background()
	folders := host.NewMemoryFolderStore()
	folder, err := folders.Create(ctx, model.NewNodeParams{Title: "1", ParentID: model.UnfiledID})
	assert.NilError(t, err)
	_, err = folders.Create(ctx, model.NewNodeParams{Title: "Go", URL: "https://go.dev/", ParentID: folder.ID})
	assert.NilError(t, err)
	// A nested folder never matches.
	_, err = folders.Create(ctx, model.NewNodeParams{Title: "https://go.dev", ParentID: folder.ID})
	assert.NilError(t, err)

	m := feed.NewMembership(folders)
	for _, url := range []string{"https://go.dev", "https://GO.dev/", "http://go.dev/"} {
		got, err := m.IsMember(ctx, folder.ID, url)
		assert.NilError(t, err)
		assert.Assert(t, got == nil, url)
	}

	got, err := m.IsMember(ctx, folder.ID, "https://go.dev/")
	assert.NilError(t, err)
	assert.Assert(t, got != nil)
}
