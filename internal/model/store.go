package model

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a node id does not exist in the store.
var ErrNotFound = errors.New("node not found")

// Store holds the whole bookmark tree as a flat, ordered node list.
type Store struct {
	Nodes []Node `json:"nodes"`
}

// NewStore creates a Store seeded with the fixed root folders.
func NewStore() *Store {
	s := &Store{Nodes: []Node{}}
	s.EnsureBuiltins()
	return s
}

// EnsureBuiltins adds any missing fixed root folders.
func (s *Store) EnsureBuiltins() {
	if s.GetNodeByID(RootID) == nil {
		s.Nodes = append([]Node{{ID: RootID, Kind: KindFolder, CreatedAt: time.Now()}}, s.Nodes...)
	}
	for _, f := range builtinFolders {
		if s.GetNodeByID(f.id) != nil {
			continue
		}
		root := RootID
		s.Nodes = append(s.Nodes, Node{
			ID:        f.id,
			Kind:      KindFolder,
			Title:     f.title,
			ParentID:  &root,
			CreatedAt: time.Now(),
		})
	}
}

// Children returns the direct children of parentID in order.
// Pass "" for top level nodes.
func (s *Store) Children(parentID string) []Node {
	result := []Node{}
	for _, n := range s.Nodes {
		if n.Parent() == parentID {
			result = append(result, n)
		}
	}
	return result
}

// GetNodeByID finds a node by ID, returns nil if not found.
func (s *Store) GetNodeByID(id string) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// Insert appends node as the last child of its parent.
func (s *Store) Insert(node Node) error {
	parent := node.Parent()
	if parent != "" {
		p := s.GetNodeByID(parent)
		if p == nil || !p.IsFolder() {
			return ErrNotFound
		}
	}
	s.Nodes = append(s.Nodes, node)
	return nil
}

// Remove deletes a node and, for folders, everything below it.
func (s *Store) Remove(id string) error {
	if s.GetNodeByID(id) == nil {
		return ErrNotFound
	}

	doomed := map[string]bool{id: true}
	// Nodes may appear before their parents, so sweep until nothing new is marked.
	for changed := true; changed; {
		changed = false
		for _, n := range s.Nodes {
			if !doomed[n.ID] && doomed[n.Parent()] {
				doomed[n.ID] = true
				changed = true
			}
		}
	}

	kept := s.Nodes[:0]
	for _, n := range s.Nodes {
		if !doomed[n.ID] {
			kept = append(kept, n)
		}
	}
	s.Nodes = kept
	return nil
}

// Move repositions a node among its siblings. index is taken in the sibling
// list after the node has been detached; values past the end append.
func (s *Store) Move(id string, index int) error {
	pos := -1
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return ErrNotFound
	}
	if index < 0 {
		index = 0
	}

	node := s.Nodes[pos]
	s.Nodes = append(s.Nodes[:pos], s.Nodes[pos+1:]...)

	// Insert before the sibling currently at index, or at the end.
	parent := node.Parent()
	insertAt := len(s.Nodes)
	seen := 0
	for i, n := range s.Nodes {
		if n.Parent() != parent {
			continue
		}
		if seen == index {
			insertAt = i
			break
		}
		seen++
	}

	s.Nodes = append(s.Nodes, Node{})
	copy(s.Nodes[insertAt+1:], s.Nodes[insertAt:])
	s.Nodes[insertAt] = node
	return nil
}

// FindChild returns the first direct child of parentID with the given kind
// and exact title, or nil.
func (s *Store) FindChild(parentID string, kind NodeKind, title string) *Node {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if n.Parent() == parentID && n.Kind == kind && n.Title == title {
			return n
		}
	}
	return nil
}

// GetFolderPath returns the full path of a folder (e.g., "Other Bookmarks / Website Feed / 1").
func (s *Store) GetFolderPath(id string) string {
	var parts []string
	for cur := s.GetNodeByID(id); cur != nil && cur.ID != RootID; cur = s.GetNodeByID(cur.Parent()) {
		parts = append([]string{cur.Title}, parts...)
	}
	return strings.Join(parts, " / ")
}
