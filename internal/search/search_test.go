package search

import (
	"testing"

	"github.com/nikbrunner/feed/internal/model"
)

func testList() []model.Node {
	return []model.Node{
		model.NewBookmark("TanStack Router", "https://tanstack.com/router", "p1"),
		model.NewBookmark("React Router", "https://reactrouter.com", "p1"),
		model.NewBookmark("GitHub", "https://github.com", "p1"),
		model.NewBookmark("", "https://gitlab.com", "p1"),
	}
}

func TestBookmarks_EmptyQuery(t *testing.T) {
	if results := Bookmarks(testList(), ""); len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestBookmarks_ExactMatch(t *testing.T) {
	results := Bookmarks(testList(), "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Bookmark.Title)
	}
	if results[0].Page != 3 {
		t.Errorf("expected page 3, got %d", results[0].Page)
	}
}

func TestBookmarks_FuzzyMatch(t *testing.T) {
	// "tanrou" should fuzzy match "TanStack Router"
	results := Bookmarks(testList(), "tanrou")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'tanrou', got %d", len(results))
	}
	if results[0].Bookmark.Title != "TanStack Router" {
		t.Errorf("expected TanStack Router as first result, got %s", results[0].Bookmark.Title)
	}
	if len(results[0].MatchedIndexes) != len("tanrou") {
		t.Errorf("expected %d matched indexes, got %v", len("tanrou"), results[0].MatchedIndexes)
	}
}

func TestBookmarks_MultipleMatches(t *testing.T) {
	results := Bookmarks(testList(), "router")

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Bookmark.Title != "TanStack Router" && r.Bookmark.Title != "React Router" {
			t.Errorf("unexpected result %q", r.Bookmark.Title)
		}
	}
}

func TestBookmarks_UntitledMatchesURL(t *testing.T) {
	results := Bookmarks(testList(), "gitlab")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.URL != "https://gitlab.com" || results[0].Page != 4 {
		t.Errorf("unexpected result %+v", results[0])
	}
}

func TestBookmarks_NoMatch(t *testing.T) {
	if results := Bookmarks(testList(), "zzzz"); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestLabel(t *testing.T) {
	if got := Label(model.NewBookmark("Go", "https://go.dev", "p")); got != "Go" {
		t.Errorf("Label = %q, want Go", got)
	}
	if got := Label(model.NewBookmark("", "https://go.dev", "p")); got != "https://go.dev" {
		t.Errorf("Label = %q, want URL", got)
	}
}
