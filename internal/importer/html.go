// Package importer reads Netscape bookmark HTML into profile lists.
package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/feed/internal/host"
	"github.com/nikbrunner/feed/internal/model"
)

// Entry is a bookmark found in an HTML export.
type Entry struct {
	Title  string
	URL    string
	Folder string // title of the enclosing folder, "" at top level
}

// ParseHTML parses Netscape bookmark HTML and returns its bookmarks in
// document order. Folder hierarchy is flattened to the nearest folder title.
func ParseHTML(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	var folderStack []string // titles of the open folders
	pending := ""            // folder waiting for its DL
	hasPending := false

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				if name := getTextContent(n); name != "" {
					pending, hasPending = name, true
				}
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}
				title := getTextContent(n)
				if title == "" {
					title = href
				}

				folder := ""
				if len(folderStack) > 0 {
					folder = folderStack[len(folderStack)-1]
				}
				entries = append(entries, Entry{Title: title, URL: href, Folder: folder})
				return

			case "dl":
				pushed := false
				if hasPending {
					folderStack = append(folderStack, pending)
					pending, hasPending = "", false
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// GroupByFolder splits entries by their folder title, keeping document order
// within each group.
func GroupByFolder(entries []Entry) map[string][]Entry {
	groups := make(map[string][]Entry)
	for _, e := range entries {
		groups[e.Folder] = append(groups[e.Folder], e)
	}
	return groups
}

// Result counts what Import did.
type Result struct {
	Added   int
	Skipped int // URL already in the list
}

// Import appends entries to folderID as bookmarks. URLs already present in
// the folder, or repeated in entries, are skipped.
func Import(ctx context.Context, folders host.FolderStore, folderID string, entries []Entry) (Result, error) {
	children, err := folders.GetChildren(ctx, folderID)
	if err != nil {
		return Result{}, err
	}
	seen := make(map[string]bool, len(children)+len(entries))
	for _, c := range children {
		if c.IsBookmark() {
			seen[c.URL] = true
		}
	}

	var result Result
	for _, e := range entries {
		if seen[e.URL] {
			result.Skipped++
			continue
		}
		if _, err := folders.Create(ctx, model.NewNodeParams{
			Title:    e.Title,
			URL:      e.URL,
			ParentID: folderID,
		}); err != nil {
			return result, fmt.Errorf("import %s: %w", e.URL, err)
		}
		seen[e.URL] = true
		result.Added++
	}
	return result, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
