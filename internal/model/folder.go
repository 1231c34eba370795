package model

// Well-known folder ids. They mirror the fixed roots of a browser bookmark tree.
const (
	RootID    = "root________"
	MenuID    = "menu________"
	ToolbarID = "toolbar_____"
	UnfiledID = "unfiled_____"
	MobileID  = "mobile______"
)

// builtinFolders lists the folders every store starts with, in display order.
var builtinFolders = []struct {
	id    string
	title string
}{
	{MenuID, "Bookmarks Menu"},
	{ToolbarID, "Bookmarks Toolbar"},
	{UnfiledID, "Other Bookmarks"},
	{MobileID, "Mobile Bookmarks"},
}

// NewFolder creates a folder node under parentID.
func NewFolder(title, parentID string) Node {
	return NewNode(NewNodeParams{Title: title, ParentID: parentID})
}

// IsBuiltin reports whether id names one of the fixed roots.
func IsBuiltin(id string) bool {
	if id == RootID {
		return true
	}
	for _, f := range builtinFolders {
		if f.id == id {
			return true
		}
	}
	return false
}
