// SPDX-License-Identifier: MIT
// File: components.go
// Role: Connected components by breadth-first traversal.
// Concurrency:
//   - Uses the public read methods; safe alongside other readers.

package core

import "sort"

// componentWalker carries the state of one Components call.
type componentWalker struct {
	graph   *Graph
	queue   []string
	visited map[string]bool
}

// Components returns the connected components of g, each a sorted list of
// vertex IDs, ordered by their smallest ID. Isolated vertices form
// singleton components.
//
// Complexity: O(V log V + E).
func Components(g *Graph) [][]string {
	vertices := g.Vertices()
	w := &componentWalker{
		graph:   g,
		queue:   make([]string, 0, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
	}

	var out [][]string
	for _, id := range vertices {
		if w.visited[id] {
			continue
		}
		out = append(out, w.collect(id))
	}

	return out
}

// collect drains a breadth-first traversal from start and returns the
// visited vertices sorted.
func (w *componentWalker) collect(start string) []string {
	w.visited[start] = true
	w.queue = append(w.queue[:0], start)
	comp := make([]string, 0, 1)

	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		comp = append(comp, id)

		// id came from Vertices(), so the lookup cannot fail.
		nbs, _ := w.graph.NeighborIDs(id)
		for _, nb := range nbs {
			if !w.visited[nb] {
				w.visited[nb] = true
				w.queue = append(w.queue, nb)
			}
		}
	}
	sort.Strings(comp)

	return comp
}
