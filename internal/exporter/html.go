// Package exporter writes profile lists as Netscape bookmark HTML.
package exporter

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/feed/internal/host"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/feed-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("feed-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the folder folderID, titled title, and everything below
// it in Netscape bookmark HTML. Children keep their order.
func ExportHTML(ctx context.Context, folders host.FolderStore, folderID, title string) (string, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(title))
	b.WriteString("    <DL><p>\n")
	if err := writeItems(ctx, &b, folders, folderID, 2); err != nil {
		return "", err
	}
	b.WriteString("    </DL><p>\n")

	b.WriteString("</DL><p>\n")
	return b.String(), nil
}

// writeItems recursively writes the children of parentID.
func writeItems(ctx context.Context, b *strings.Builder, folders host.FolderStore, parentID string, indent int) error {
	prefix := strings.Repeat("    ", indent)

	children, err := folders.GetChildren(ctx, parentID)
	if err != nil {
		return err
	}
	for _, c := range children {
		if c.IsFolder() {
			fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(c.Title))
			fmt.Fprintf(b, "%s<DL><p>\n", prefix)
			if err := writeItems(ctx, b, folders, c.ID, indent+1); err != nil {
				return err
			}
			fmt.Fprintf(b, "%s</DL><p>\n", prefix)
			continue
		}

		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(c.URL),
			c.CreatedAt.Unix(),
			html.EscapeString(c.Title),
		)
	}
	return nil
}
