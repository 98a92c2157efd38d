// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddClique/HasEdge,
//       Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge records the conflict {u,v}, creating missing endpoints.
// Re-adding an existing edge (in either orientation) is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if u or v is empty.
//   - ErrLoopNotAllowed if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// AddClique adds an edge between every unordered pair of ids, emitted in
// lexicographic index order (i<j). Vertices are added even when len(ids) < 2.
//
// Errors: the first AddVertex/AddEdge error, wrapped with the offending IDs.
// Complexity: O(k²) for k = len(ids).
func (g *Graph) AddClique(ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("core: AddClique: AddVertex(%q): %w", id, err)
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("core: AddClique: AddEdge(%q,%q): %w", ids[i], ids[j], err)
			}
		}
	}

	return nil
}

// HasEdge reports whether {u,v} is a conflict. Orientation is irrelevant.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns every conflict once, with From < To, sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbs := range g.adjacency {
		for v := range nbs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
