package graph

import "slices"

// Graph is a root graph or one of its subgraphs.
//
// The zero value is not usable - use New to create a root graph and
// [Graph.Subgraph] to create nested ones.
type Graph struct {
	name     string
	parent   *Graph
	root     *Graph
	directed bool
	strict   bool
	attrs    Attrs

	// root only: attribute declarations per kind, in declaration order
	syms [numKinds][]*Sym
	// subgraph-local default overrides per kind
	defaults [numKinds]Attrs

	nodes     []*Node
	nodeIndex map[string]*Node
	edges     []*Edge
	edgeSet   map[*Edge]bool
	subgraphs []*Graph
	subIndex  map[string]*Graph
}

// New creates an empty root graph. The direction is fixed for the root and
// every subgraph created from it.
func New(name string, directed bool) *Graph {
	g := newGraph(name, nil)
	g.root = g
	g.directed = directed
	return g
}

func newGraph(name string, parent *Graph) *Graph {
	g := &Graph{
		name:      name,
		parent:    parent,
		nodeIndex: make(map[string]*Node),
		edgeSet:   make(map[*Edge]bool),
		subIndex:  make(map[string]*Graph),
	}
	if parent != nil {
		g.root = parent.root
		g.directed = parent.directed
	}
	return g
}

// Kind returns [KindGraph].
func (g *Graph) Kind() Kind { return KindGraph }

// Name returns the graph's current name.
func (g *Graph) Name() string { return g.name }

// Attrs returns the graph's own attribute values.
func (g *Graph) Attrs() *Attrs { return &g.attrs }

func (g *Graph) values() *Attrs { return &g.attrs }

// Root returns the root graph. The root returns itself.
func (g *Graph) Root() *Graph { return g.root }

// Parent returns the enclosing graph, or nil for the root.
func (g *Graph) Parent() *Graph { return g.parent }

// IsRoot reports whether g has no enclosing graph.
func (g *Graph) IsRoot() bool { return g.parent == nil }

// Directed reports whether edges of g are directed.
func (g *Graph) Directed() bool { return g.directed }

// Strict reports whether the root graph was marked strict.
func (g *Graph) Strict() bool { return g.root.strict }

// SetStrict marks the root graph strict. It has no effect on subgraphs.
func (g *Graph) SetStrict(strict bool) {
	if g.IsRoot() {
		g.strict = strict
	}
}

// Subgraph returns the subgraph of g with the given name, creating it if
// create is true. Returns nil if the subgraph does not exist and create is false.
func (g *Graph) Subgraph(name string, create bool) *Graph {
	if s, ok := g.subIndex[name]; ok {
		return s
	}
	if !create {
		return nil
	}
	s := newGraph(name, g)
	g.subgraphs = append(g.subgraphs, s)
	g.subIndex[name] = s
	return s
}

// Subgraphs returns the direct subgraphs of g in creation order.
func (g *Graph) Subgraphs() []*Graph { return g.subgraphs }

// Node returns the node named name as seen from g. A node that exists
// elsewhere in the root graph is added to g (and every graph between g and
// the root). With create set, a missing node is created; otherwise nil is
// returned.
func (g *Graph) Node(name string, create bool) *Node {
	if n, ok := g.nodeIndex[name]; ok {
		return n
	}
	n, ok := g.root.nodeIndex[name]
	if !ok {
		if !create {
			return nil
		}
		n = &Node{name: name}
	}
	for sg := g; sg != nil; sg = sg.parent {
		if _, ok := sg.nodeIndex[n.name]; ok {
			break
		}
		sg.nodes = append(sg.nodes, n)
		sg.nodeIndex[n.name] = n
	}
	return n
}

// FindNode returns the node named name if it is a member of g.
func (g *Graph) FindNode(name string) (*Node, bool) {
	n, ok := g.nodeIndex[name]
	return n, ok
}

// Nodes returns the members of g in the order they were added.
// The returned slice should not be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// NodeCount returns the number of nodes in g.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// DeleteNode removes n and every edge incident to it from g and all of g's
// subgraphs. Deleting from the root removes the node entirely.
func (g *Graph) DeleteNode(n *Node) {
	if _, ok := g.nodeIndex[n.name]; !ok {
		return
	}
	for _, s := range g.subgraphs {
		s.DeleteNode(n)
	}
	g.edges = slices.DeleteFunc(g.edges, func(e *Edge) bool {
		if e.tail == n || e.head == n {
			delete(g.edgeSet, e)
			return true
		}
		return false
	})
	g.nodes = slices.DeleteFunc(g.nodes, func(m *Node) bool { return m == n })
	delete(g.nodeIndex, n.name)
}

// Edge returns the edge from tail to head as seen from g, adding both
// endpoints to g. An existing edge anywhere in the root graph is reused
// and added to g; in undirected graphs an edge stored as (head, tail) also
// matches. With create set, a missing edge is created; otherwise nil is
// returned.
//
// Callers must compare [Edge.Tail] with the requested tail to learn whether
// the stored orientation differs from the requested one.
func (g *Graph) Edge(tail, head *Node, create bool) *Edge {
	if e := g.findEdge(tail, head); e != nil {
		return e
	}
	e := g.root.findEdge(tail, head)
	if e == nil {
		if !create {
			return nil
		}
		e = &Edge{tail: tail, head: head}
	}
	g.Node(tail.name, true)
	g.Node(head.name, true)
	for sg := g; sg != nil; sg = sg.parent {
		if sg.edgeSet[e] {
			break
		}
		sg.edges = append(sg.edges, e)
		sg.edgeSet[e] = true
	}
	return e
}

func (g *Graph) findEdge(tail, head *Node) *Edge {
	for _, e := range g.edges {
		if e.tail == tail && e.head == head {
			return e
		}
	}
	if g.directed {
		return nil
	}
	for _, e := range g.edges {
		if e.tail == head && e.head == tail {
			return e
		}
	}
	return nil
}

// Edges returns the edges of g in the order they were added.
// The returned slice should not be modified.
func (g *Graph) Edges() []*Edge { return g.edges }

// EdgeCount returns the number of edges in g.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Rename changes the identity of a node or subgraph of g's root graph.
// Returns ErrEmptyName for an empty name, ErrDuplicateName if the name is
// taken, or ErrNotRenamable for edges.
//
// Renaming a node is O(G) where G is the number of graphs in the tree, as
// every subgraph index holding the node must be updated.
func (g *Graph) Rename(obj Object, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	switch o := obj.(type) {
	case *Node:
		return g.root.renameNode(o, name)
	case *Graph:
		if o.root != g.root {
			return ErrNotRenamable
		}
		return o.rename(name)
	default:
		return ErrNotRenamable
	}
}

func (g *Graph) renameNode(n *Node, name string) error {
	if n.name == name {
		return nil
	}
	if cur, ok := g.nodeIndex[n.name]; !ok || cur != n {
		return ErrNotRenamable
	}
	if _, exists := g.nodeIndex[name]; exists {
		return ErrDuplicateName
	}
	old := n.name
	g.walk(func(sg *Graph) {
		if sg.nodeIndex[old] == n {
			delete(sg.nodeIndex, old)
			sg.nodeIndex[name] = n
		}
	})
	n.name = name
	return nil
}

func (g *Graph) rename(name string) error {
	if g.name == name {
		return nil
	}
	if g.parent != nil {
		if _, exists := g.parent.subIndex[name]; exists {
			return ErrDuplicateName
		}
		delete(g.parent.subIndex, g.name)
		g.parent.subIndex[name] = g
	}
	g.name = name
	return nil
}

// walk calls fn for g and every nested subgraph, parents first.
func (g *Graph) walk(fn func(*Graph)) {
	fn(g)
	for _, s := range g.subgraphs {
		s.walk(fn)
	}
}

// Depth returns the number of graphs between g and the root; the root is 0.
func (g *Graph) Depth() int {
	d := 0
	for p := g.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
