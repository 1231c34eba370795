package model

import "time"

// NodeKind distinguishes folders from bookmarks in the tree.
type NodeKind string

const (
	KindFolder   NodeKind = "folder"
	KindBookmark NodeKind = "bookmark"
)

// Node is a single entry of the bookmark tree: either a folder or a bookmark.
// Children of a folder are ordered by their appearance in Store.Nodes.
type Node struct {
	ID        string    `json:"id"`
	Kind      NodeKind  `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"` // empty for folders
	ParentID  *string   `json:"parentId"`      // nil = tree root
	CreatedAt time.Time `json:"createdAt"`
}

// IsFolder returns true if the node is a folder.
func (n Node) IsFolder() bool {
	return n.Kind == KindFolder
}

// IsBookmark returns true if the node carries a URL.
func (n Node) IsBookmark() bool {
	return n.Kind == KindBookmark && n.URL != ""
}

// Parent returns the parent id, or "" for the tree root.
func (n Node) Parent() string {
	if n.ParentID == nil {
		return ""
	}
	return *n.ParentID
}

// NewNodeParams holds parameters for creating a new Node.
// A non-empty URL makes the node a bookmark.
type NewNodeParams struct {
	Title    string
	URL      string
	ParentID string
}

// NewNode creates a Node with generated UUID and timestamp.
func NewNode(params NewNodeParams) Node {
	kind := KindFolder
	if params.URL != "" {
		kind = KindBookmark
	}

	var parentID *string
	if params.ParentID != "" {
		p := params.ParentID
		parentID = &p
	}

	return Node{
		ID:        GenerateUUID(),
		Kind:      kind,
		Title:     params.Title,
		URL:       params.URL,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
}
