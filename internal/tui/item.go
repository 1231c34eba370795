package tui

import (
	"github.com/nikbrunner/feed/internal/model"
	"github.com/nikbrunner/feed/internal/search"
)

// Item is one row of the profile list.
type Item struct {
	Bookmark model.Node
	Page     int // 1-based
}

// itemsFrom numbers bookmarks as pages.
func itemsFrom(bookmarks []model.Node) []Item {
	items := make([]Item, len(bookmarks))
	for i, b := range bookmarks {
		items[i] = Item{Bookmark: b, Page: i + 1}
	}
	return items
}

// Title returns a display title for the item.
func (i Item) Title() string {
	return search.Label(i.Bookmark)
}

// URL returns the bookmark URL.
func (i Item) URL() string {
	return i.Bookmark.URL
}
