// SPDX-License-Identifier: MIT
// Package core defines the conflict Graph, the Edge value, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for conflict graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected conflict between two vertices.
// Edges returned by Graph.Edges always satisfy From < To.
type Edge struct {
	From string
	To   string
}

// Graph is the in-memory conflict graph.
//
// adjacency[u][v] is present iff the undirected edge {u,v} exists; every
// edge is stored in both directions. mu guards all fields.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
