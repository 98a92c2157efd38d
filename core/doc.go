// Package core provides the thread-safe, undirected simple Graph used to
// model pairing conflicts: vertices are entrant IDs and an edge {u,v} means
// "u and v must never be paired".
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: AddEdge(u,v) and AddEdge(v,u) denote the same edge.
//   - Simple: no self-loops (ErrLoopNotAllowed); re-adding an edge is a no-op,
//     so two rules forbidding the same pair collapse into one constraint.
//   - Unweighted: a conflict either exists or it does not.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() are sorted.
//   - One sync.RWMutex guards vertices and adjacency together, so a graph
//     may be shared read-only across goroutines.
//
// The graph is built once and then only read. Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error         // O(1), auto-adds endpoints
//	AddClique(ids []string) error      // O(k²)
//	HasEdge(u, v string) bool          // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Degree(id string) (int, error)           // O(1)
//	Vertices() []string                      // O(V·log V)
//	Edges() []Edge                           // O(E·log E), From < To
//	VertexCount(), EdgeCount()               // O(1)
//
//	// Views
//	Clone() *Graph                           // O(V+E) deep copy
//	InducedSubgraph(g, keep) *Graph          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – an entrant cannot conflict with itself
package core
