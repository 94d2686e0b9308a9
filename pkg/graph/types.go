package graph

import "errors"

var (
	// ErrEmptyName is returned by [Graph.Rename] when the new name is empty.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrDuplicateName is returned by [Graph.Rename] when another node of the
	// root graph, or another subgraph of the same parent, already uses the name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotRenamable is returned by [Graph.Rename] for objects without an
	// identity of their own (edges) or objects that belong to another root.
	ErrNotRenamable = errors.New("object cannot be renamed")
)

// Kind identifies the type of a graph object and scopes attribute declarations.
type Kind int

const (
	KindGraph Kind = iota
	KindNode
	KindEdge
)

const numKinds = 3

// String returns "graph", "node" or "edge".
func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Object is implemented by [*Graph], [*Node] and [*Edge].
type Object interface {
	Kind() Kind
	Name() string
	values() *Attrs
}

// Sym is an attribute declaration on the root graph.
// Objects of the declared kind that carry no explicit value report Default.
type Sym struct {
	Kind    Kind
	Name    string
	Default string
}

// Attrs is an insertion-ordered string map of attribute values.
type Attrs struct {
	keys []string
	m    map[string]string
}

func (a *Attrs) set(key, value string) {
	if a.m == nil {
		a.m = make(map[string]string)
	}
	if _, ok := a.m[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.m[key] = value
}

// Get returns the value stored for key.
func (a *Attrs) Get(key string) (string, bool) {
	v, ok := a.m[key]
	return v, ok
}

// Keys returns the keys in the order they were first set.
func (a *Attrs) Keys() []string { return a.keys }

// Len returns the number of stored keys.
func (a *Attrs) Len() int { return len(a.keys) }

// Node is a vertex of a root graph.
type Node struct {
	name  string
	attrs Attrs
}

// Kind returns [KindNode].
func (n *Node) Kind() Kind { return KindNode }

// Name returns the node's current name.
func (n *Node) Name() string { return n.name }

// Attrs returns the node's explicit attribute values.
func (n *Node) Attrs() *Attrs { return &n.attrs }

func (n *Node) values() *Attrs { return &n.attrs }

// Edge is a (tail, head) pair of nodes.
// For undirected graphs the pair keeps the order the edge was created with.
type Edge struct {
	tail, head *Node
	attrs      Attrs
}

// Kind returns [KindEdge].
func (e *Edge) Kind() Kind { return KindEdge }

// Name returns the empty string; edges are identified by their endpoints.
func (e *Edge) Name() string { return "" }

// Tail returns the stored tail node.
func (e *Edge) Tail() *Node { return e.tail }

// Head returns the stored head node.
func (e *Edge) Head() *Node { return e.head }

// Attrs returns the edge's explicit attribute values.
func (e *Edge) Attrs() *Attrs { return &e.attrs }

func (e *Edge) values() *Attrs { return &e.attrs }
