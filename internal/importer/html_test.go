package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/importer"
	"github.com/nikbrunner/feed/internal/model"
)

const nestedHTML = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Website Feed</H3>
    <DL><p>
        <DT><H3>1</H3>
        <DL><p>
            <DT><A HREF="https://react.dev" ADD_DATE="1234567890">React Docs</A>
            <DT><A HREF="https://go.dev">Go</A>
        </DL><p>
        <DT><H3>2</H3>
        <DL><p>
            <DT><A HREF="https://github.com">GitHub</A>
        </DL><p>
    </DL><p>
    <DT><A HREF="https://google.com" ADD_DATE="1234567890">Google</A>
</DL><p>`

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	entries, err := importer.ParseHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Title != "Example Site" || e.URL != "https://example.com" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Folder != "" {
		t.Errorf("expected top level entry, got folder %q", e.Folder)
	}
}

func TestParseHTML_NestedFolders(t *testing.T) {
	entries, err := importer.ParseHTML(strings.NewReader(nestedHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []importer.Entry{
		{Title: "React Docs", URL: "https://react.dev", Folder: "1"},
		{Title: "Go", URL: "https://go.dev", Folder: "1"},
		{Title: "GitHub", URL: "https://github.com", Folder: "2"},
		{Title: "Google", URL: "https://google.com", Folder: ""},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}

	groups := importer.GroupByFolder(entries)
	if len(groups["1"]) != 2 || len(groups["2"]) != 1 || len(groups[""]) != 1 {
		t.Errorf("unexpected groups %+v", groups)
	}
}

func TestParseHTML_EmptyFile(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
</DL><p>`

	entries, err := importer.ParseHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestParseHTML_MissingTitleAndHref(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://untitled.example"></A>
    <DT><A>No link</A>
</DL><p>`

	entries, err := importer.ParseHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "https://untitled.example" {
		t.Errorf("expected URL as title fallback, got %q", entries[0].Title)
	}
}

func TestImport_SkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	folders := host.NewMemoryFolderStore()
	folder, err := folders.Create(ctx, model.NewNodeParams{Title: "1", ParentID: model.UnfiledID})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := folders.Create(ctx, model.NewNodeParams{Title: "Go", URL: "https://go.dev", ParentID: folder.ID}); err != nil {
		t.Fatal(err)
	}

	entries := []importer.Entry{
		{Title: "Go again", URL: "https://go.dev"},
		{Title: "React", URL: "https://react.dev"},
		{Title: "React twice", URL: "https://react.dev"},
		{Title: "GitHub", URL: "https://github.com"},
	}
	result, err := importer.Import(ctx, folders, folder.ID, entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Added != 2 || result.Skipped != 2 {
		t.Errorf("unexpected result %+v", result)
	}

	children, _ := folders.GetChildren(ctx, folder.ID)
	var got []string
	for _, c := range children {
		got = append(got, c.Title)
	}
	want := []string{"Go", "React", "GitHub"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestImport_MissingFolder(t *testing.T) {
	folders := host.NewMemoryFolderStore()
	_, err := importer.Import(context.Background(), folders, "missing", []importer.Entry{{URL: "https://go.dev"}})
	if err == nil {
		t.Error("expected error for missing folder")
	}
}
