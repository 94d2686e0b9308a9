package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/graphml2gv/pkg/graph"
)

// Marshal returns the DOT text of the root graph of g.
func Marshal(g *graph.Graph) []byte {
	e := encoder{
		nodes: make(map[*graph.Node]bool),
		edges: make(map[*graph.Edge]bool),
	}
	e.graph(g.Root(), 0)
	return e.buf.Bytes()
}

// Write writes the DOT text of the root graph of g to w.
func Write(w io.Writer, g *graph.Graph) error {
	_, err := w.Write(Marshal(g))
	return err
}

type encoder struct {
	buf   bytes.Buffer
	nodes map[*graph.Node]bool
	edges map[*graph.Edge]bool
}

func (e *encoder) graph(g *graph.Graph, depth int) {
	indent := strings.Repeat("\t", depth)
	if g.IsRoot() {
		if g.Strict() {
			e.buf.WriteString("strict ")
		}
		if g.Directed() {
			e.buf.WriteString("digraph")
		} else {
			e.buf.WriteString("graph")
		}
	} else {
		e.buf.WriteString(indent + "subgraph")
	}
	if g.Name() != "" {
		e.buf.WriteString(" " + ID(g.Name()))
	}
	e.buf.WriteString(" {\n")

	inner := indent + "\t"
	e.defaults(g, inner)
	for _, k := range g.Attrs().Keys() {
		v, _ := g.Attrs().Get(k)
		fmt.Fprintf(&e.buf, "%s%s=%s;\n", inner, ID(k), ID(v))
	}
	for _, s := range g.Subgraphs() {
		e.graph(s, depth+1)
	}
	for _, n := range g.Nodes() {
		e.node(g, n, inner)
	}
	for _, ed := range g.Edges() {
		e.edge(g, ed, inner)
	}
	e.buf.WriteString(indent + "}\n")
}

// defaults writes "graph/node/edge [...]" statements. The root writes its
// declarations with a non-empty default; subgraphs write their local ones.
func (e *encoder) defaults(g *graph.Graph, indent string) {
	for _, k := range []graph.Kind{graph.KindGraph, graph.KindNode, graph.KindEdge} {
		var list []string
		if g.IsRoot() {
			for _, sym := range g.Syms(k) {
				if sym.Default != "" {
					list = append(list, ID(sym.Name)+"="+ID(sym.Default))
				}
			}
		} else {
			list = attrList(g.Defaults(k))
		}
		if len(list) > 0 {
			fmt.Fprintf(&e.buf, "%s%s [%s];\n", indent, k, strings.Join(list, ", "))
		}
	}
}

func (e *encoder) node(g *graph.Graph, n *graph.Node, indent string) {
	if e.nodes[n] {
		if !g.IsRoot() {
			fmt.Fprintf(&e.buf, "%s%s;\n", indent, ID(n.Name()))
		}
		return
	}
	e.nodes[n] = true
	fmt.Fprintf(&e.buf, "%s%s%s;\n", indent, ID(n.Name()), attrBlock(n.Attrs()))
}

func (e *encoder) edge(g *graph.Graph, ed *graph.Edge, indent string) {
	if e.edges[ed] {
		return
	}
	e.edges[ed] = true
	op := "--"
	if g.Directed() {
		op = "->"
	}
	fmt.Fprintf(&e.buf, "%s%s %s %s%s;\n", indent,
		ID(ed.Tail().Name()), op, ID(ed.Head().Name()), attrBlock(ed.Attrs()))
}

func attrList(a *graph.Attrs) []string {
	list := make([]string, 0, a.Len())
	for _, k := range a.Keys() {
		v, _ := a.Get(k)
		list = append(list, ID(k)+"="+ID(v))
	}
	return list
}

func attrBlock(a *graph.Attrs) string {
	if a.Len() == 0 {
		return ""
	}
	return " [" + strings.Join(attrList(a), ", ") + "]"
}
