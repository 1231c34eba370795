// Package search finds bookmarks of a profile list by fuzzy matching.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/feed/internal/model"
)

// Result is a fuzzy match within a profile list.
type Result struct {
	Bookmark       *model.Node
	Page           int // 1-based position in the list
	MatchedIndexes []int
	Score          int
}

// listEntries implements fuzzy.Source over a profile list. An entry without
// title is matched by its URL.
type listEntries []model.Node

func (l listEntries) String(i int) string {
	return Label(l[i])
}

func (l listEntries) Len() int {
	return len(l)
}

// Label returns the text a bookmark is matched and shown by.
func Label(n model.Node) string {
	if n.Title == "" {
		return n.URL
	}
	return n.Title
}

// Bookmarks searches list by label. Returns results sorted by match score
// (best first); nil for an empty query.
func Bookmarks(list []model.Node, query string) []Result {
	if query == "" {
		return nil
	}

	entries := listEntries(list)
	matches := fuzzy.FindFrom(query, entries)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       &entries[m.Index],
			Page:           m.Index + 1,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
