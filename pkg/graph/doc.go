// Package graph provides an in-memory attributed graph model.
//
// The model follows the shape Graphviz uses for its own graphs: a root
// graph owns every node and edge, subgraphs hold references to a subset of
// them, and attributes are declared once per object kind on the root before
// any object can carry a value for them.
//
// # Core Types
//
//   - [Graph]: root graph or subgraph, with a direction fixed at creation
//   - [Node]: vertex identified by a name unique across the root graph
//   - [Edge]: ordered (tail, head) pair of nodes
//   - [Sym]: attribute declaration (kind, name, default value)
//
// # Building a Graph
//
//	g := graph.New("G", true)
//	a := g.Node("a", true)
//	b := g.Node("b", true)
//	e := g.Edge(a, b, true)
//
//	color := g.Declare(graph.KindEdge, "color", "")
//	g.Set(e, color, "red")
//
// # Identity
//
// Node names are unique across the root graph at any instant. [Graph.Rename]
// changes a node or subgraph identity in place and fails with
// [ErrDuplicateName] when the new name is already taken.
//
// Edges are deduplicated: [Graph.Edge] returns an existing edge between the
// same endpoints instead of creating a second one. In undirected graphs the
// endpoints match in either order, and the edge keeps the orientation it was
// first created with.
//
// # Concurrency
//
// A Graph is not safe for concurrent use without external synchronization.
package graph
