package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/feed/internal/browser"
	"github.com/nikbrunner/feed/internal/feed"
	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/storage"
)

// workspace writes a config selecting the JSON backend into a temp dir.
func workspace(t *testing.T) (dir, config string) {
	t.Helper()
	dir = t.TempDir()
	config = filepath.Join(dir, "config.json")
	assert.NilError(t, os.WriteFile(config, []byte(`{"backend": "json"}`), 0644))
	return dir, config
}

func run(t *testing.T, config string, args ...string) error {
	t.Helper()
	var f flags
	root := newRootCmd(&f)
	root.SetArgs(append([]string{"--config", config}, args...))
	return root.ExecuteContext(context.Background())
}

// saved reopens the workspace and returns profile's URLs.
func saved(t *testing.T, dir, profile string) []string {
	t.Helper()
	ctx := context.Background()
	store, err := storage.NewJSONStorage(filepath.Join(dir, "bookmarks.json")).Load()
	assert.NilError(t, err)

	f := feed.New(feed.Params{
		Folders:  host.NewBookmarkHost(store, nil),
		Tabs:     browser.NewStatic(host.Tab{}),
		Settings: storage.NewSettingsFile(filepath.Join(dir, "settings.json")),
	})
	bookmarks, err := f.Bookmarks(ctx, profile)
	assert.NilError(t, err)

	urls := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		urls[i] = b.URL
	}
	return urls
}

func TestToggle_Persists(t *testing.T) {
	dir, config := workspace(t)

	assert.NilError(t, run(t, config, "--url", "https://go.dev", "--title", "Go", "toggle"))
	assert.NilError(t, run(t, config, "--url", "https://pkg.go.dev", "toggle"))
	assert.DeepEqual(t, saved(t, dir, "1"), []string{"https://go.dev", "https://pkg.go.dev"})

	assert.NilError(t, run(t, config, "--url", "https://go.dev", "toggle"))
	assert.DeepEqual(t, saved(t, dir, "1"), []string{"https://pkg.go.dev"})
}

func TestProfile_SelectsAndCreates(t *testing.T) {
	dir, config := workspace(t)

	assert.NilError(t, run(t, config, "profile", "3"))
	assert.NilError(t, run(t, config, "--url", "https://go.dev", "toggle"))

	assert.Check(t, is.Len(saved(t, dir, "1"), 0))
	assert.DeepEqual(t, saved(t, dir, "3"), []string{"https://go.dev"})

	// --profile overrides the stored profile for one call.
	assert.NilError(t, run(t, config, "--profile", "2", "--url", "https://a.example", "toggle"))
	assert.DeepEqual(t, saved(t, dir, "2"), []string{"https://a.example"})
}

func TestImportExport(t *testing.T) {
	dir, config := workspace(t)
	in := filepath.Join(dir, "in.html")
	assert.NilError(t, os.WriteFile(in, []byte(`<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3>2</H3>
    <DL><p>
        <DT><A HREF="https://github.com">GitHub</A>
    </DL><p>
    <DT><A HREF="https://go.dev">Go</A>
    <DT><A HREF="https://go.dev">Go again</A>
</DL><p>`), 0644))

	assert.NilError(t, run(t, config, "import", "--by-folder", in))
	assert.DeepEqual(t, saved(t, dir, "1"), []string{"https://go.dev"})
	assert.DeepEqual(t, saved(t, dir, "2"), []string{"https://github.com"})

	out := filepath.Join(dir, "out.html")
	assert.NilError(t, run(t, config, "export", out))
	data, err := os.ReadFile(out)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `HREF="https://github.com"`))
	assert.Check(t, is.Contains(string(data), "Website Feed"))
}

func TestCommands_Errors(t *testing.T) {
	_, config := workspace(t)

	assert.ErrorContains(t, run(t, config, "import", "/does/not/exist.html"), "no such file")
	assert.ErrorContains(t, run(t, config, "goto"), "accepts 1 arg")
	assert.ErrorContains(t, run(t, config, "profile", " "), "empty name")
}
