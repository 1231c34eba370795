package model

// NewBookmark creates a bookmark node under parentID.
func NewBookmark(title, url, parentID string) Node {
	return NewNode(NewNodeParams{Title: title, URL: url, ParentID: parentID})
}
