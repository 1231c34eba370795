package feed_test

import (
	"context"
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// navFixture builds a folder holding A, a subfolder, B and C.
func navFixture(t *testing.T) (*feed.Navigator, string) {
	t.Helper()
	ctx := context.Background()
	folders := host.NewMemoryFolderStore()
	folder, err := folders.Create(ctx, model.NewNodeParams{Title: "1", ParentID: model.UnfiledID})
	assert.NilError(t, err)

	for _, p := range []model.NewNodeParams{
		{Title: "A", URL: "https://a.example"},
		{Title: "Archive"},
		{Title: "B", URL: "https://b.example"},
		{Title: "C", URL: "https://c.example"},
	} {
		p.ParentID = folder.ID
		_, err := folders.Create(ctx, p)
		assert.NilError(t, err)
	}
	return feed.NewNavigator(folders, nil), folder.ID
}

func TestNavigator_PositionOf(t *testing.T) {
	ctx := context.Background()
	nav, folder := navFixture(t)

	tests := []struct {
		url  string
		want feed.Position
	}{
		{"https://a.example", 0},
		{"https://b.example", 1},
		{"https://c.example", 2},
		{"https://d.example", feed.NotAMember},
	}
	for _, tt := range tests {
		got, err := nav.PositionOf(ctx, folder, tt.url)
		assert.NilError(t, err)
		assert.Equal(t, got, tt.want, tt.url)
	}

	count, err := nav.Count(ctx, folder)
	assert.NilError(t, err)
	assert.Equal(t, count, 3)
}

func TestNavigator_Resolve(t *testing.T) {
	ctx := context.Background()
	nav, folder := navFixture(t)

	node, err := nav.Resolve(ctx, folder, 1)
	assert.NilError(t, err)
	assert.Equal(t, node.Title, "B")

	for _, ordinal := range []int{-1, 3} {
		_, err := nav.Resolve(ctx, folder, ordinal)
		assert.Assert(t, errors.Is(err, feed.ErrOutOfRange))
	}
}

func TestNavigator_Step(t *testing.T) {
	ctx := context.Background()
	nav, folder := navFixture(t)

	tests := []struct {
		name string
		url  string
		dir  feed.Direction
		want string
	}{
		{"next from first", "https://a.example", feed.Next, "B"},
		{"prev from last", "https://c.example", feed.Prev, "B"},
		{"next from last stays", "https://c.example", feed.Next, "C"},
		{"prev from first stays", "https://a.example", feed.Prev, "A"},
		{"next from outside", "https://x.example", feed.Next, "A"},
		{"prev from outside", "https://x.example", feed.Prev, "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nav.Step(ctx, folder, tt.url, tt.dir)
			assert.NilError(t, err)
			assert.Equal(t, got.Title, tt.want)
		})
	}
}

func TestNavigator_Goto(t *testing.T) {
	ctx := context.Background()
	nav, folder := navFixture(t)

	tests := []struct {
		raw  string
		want string
	}{
		{"1", "A"},
		{"2", "B"},
		{" 3 ", "C"},
		{"0", "A"},
		{"-5", "A"},
		{"99", "C"},
		{"abc", "A"},
		{"", "A"},
		{"2.5", "A"},
	}
	for _, tt := range tests {
		got, err := nav.Goto(ctx, folder, feed.ParsePageRequest(tt.raw))
		assert.NilError(t, err)
		assert.Equal(t, got.Title, tt.want, "input %q", tt.raw)
	}
}

func TestNavigator_EmptyFolder(t *testing.T) {
	ctx := context.Background()
	folders := host.NewMemoryFolderStore()
	folder, err := folders.Create(ctx, model.NewNodeParams{Title: "1", ParentID: model.UnfiledID})
	assert.NilError(t, err)
	nav := feed.NewNavigator(folders, nil)

	for _, dir := range []feed.Direction{feed.Prev, feed.Next} {
		got, err := nav.Step(ctx, folder.ID, "https://a.example", dir)
		assert.NilError(t, err)
		assert.Assert(t, got == nil)
	}

	got, err := nav.Goto(ctx, folder.ID, feed.PageNumber(1))
	assert.NilError(t, err)
	assert.Assert(t, got == nil)
}

func TestPageRequest_Index(t *testing.T) {
	tests := []struct {
		req   feed.PageRequest
		count int
		want  int
	}{
		{feed.PageNumber(1), 3, 0},
		{feed.PageNumber(3), 3, 2},
		{feed.PageNumber(4), 3, 2},
		{feed.PageNumber(0), 3, 0},
		{feed.PageRequest{Kind: feed.NonNumeric}, 3, 0},
		{feed.PageNumber(1), 0, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.req.Index(tt.count), tt.want, "%+v of %d", tt.req, tt.count)
	}

	assert.Equal(t, feed.ParsePageRequest("x").Kind, feed.NonNumeric)
	assert.DeepEqual(t, feed.ParsePageRequest("7"), feed.PageNumber(7))
}
