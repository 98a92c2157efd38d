// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex,
//       Vertices/VertexCount, Degree and NeighborIDs.
// Determinism:
//   - Vertices() and NeighborIDs() are sorted ascending.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "sort"

// AddVertex inserts id if it is absent. Adding an existing vertex is a no-op.
//
// Errors: ErrEmptyVertexID if id == "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked assumes g.mu is held for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})
}

// HasVertex reports whether id is present. The empty ID is never present.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NeighborIDs returns the sorted IDs conflicting with id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	nbs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbs))
	for nb := range nbs {
		out = append(out, nb)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of conflicts of id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	nbs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbs), nil
}
