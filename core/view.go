// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (deep copy, induced subgraph).
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// Clone returns a deep copy of g. Later mutations of either graph are
// invisible to the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph holding the vertices v with keep[v]
// true and every edge whose endpoints are both kept. A nil keep map keeps
// everything. g is not mutated.
//
// The exact counter uses this to restrict the conflict graph to the pool
// left over after forced pairings are removed.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()
	kept := func(id string) bool { return keep == nil || keep[id] }

	g.mu.RLock()
	defer g.mu.RUnlock()
	for id := range g.vertices {
		if kept(id) {
			out.addVertexLocked(id)
		}
	}
	for u, nbs := range g.adjacency {
		if !kept(u) {
			continue
		}
		for v := range nbs {
			if u < v && kept(v) {
				out.adjacency[u][v] = struct{}{}
				out.adjacency[v][u] = struct{}{}
				out.edgeCount++
			}
		}
	}

	return out
}
