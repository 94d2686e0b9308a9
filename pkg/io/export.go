package io

import (
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/render/dot"
)

var kinds = []graph.Kind{graph.KindGraph, graph.KindNode, graph.KindEdge}

func kindOf(s string) (graph.Kind, bool) {
	for _, k := range kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

type document struct {
	Directed     bool             `json:"directed"`
	Strict       bool             `json:"strict"`
	Declarations map[string][]sym `json:"declarations,omitempty"`
	Graph        jsonGraph        `json:"graph"`
}

type sym struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

type jsonGraph struct {
	Name      string                       `json:"name"`
	Defaults  map[string]map[string]string `json:"defaults,omitempty"`
	Attrs     map[string]string            `json:"attrs,omitempty"`
	Nodes     []jsonNode                   `json:"nodes,omitempty"`
	Edges     []jsonEdge                   `json:"edges,omitempty"`
	Subgraphs []jsonGraph                  `json:"subgraphs,omitempty"`
}

type jsonNode struct {
	Name  string            `json:"name"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

type jsonEdge struct {
	Tail  string            `json:"tail"`
	Head  string            `json:"head"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// WriteJSON encodes the root graph of g as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	root := g.Root()
	doc := document{
		Directed: root.Directed(),
		Strict:   root.Strict(),
		Graph:    dump(root),
	}
	for _, k := range kinds {
		for _, s := range root.Syms(k) {
			if doc.Declarations == nil {
				doc.Declarations = make(map[string][]sym)
			}
			doc.Declarations[k.String()] = append(doc.Declarations[k.String()], sym{Name: s.Name, Default: s.Default})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode graph JSON")
	}
	return nil
}

// dump converts g. Object attributes are only written for the root.
func dump(g *graph.Graph) jsonGraph {
	jg := jsonGraph{Name: g.Name(), Attrs: toMap(g.Attrs())}
	if !g.IsRoot() {
		for _, k := range kinds {
			if d := toMap(g.Defaults(k)); d != nil {
				if jg.Defaults == nil {
					jg.Defaults = make(map[string]map[string]string)
				}
				jg.Defaults[k.String()] = d
			}
		}
	}
	for _, n := range g.Nodes() {
		jn := jsonNode{Name: n.Name()}
		if g.IsRoot() {
			jn.Attrs = toMap(n.Attrs())
		}
		jg.Nodes = append(jg.Nodes, jn)
	}
	for _, e := range g.Edges() {
		je := jsonEdge{Tail: e.Tail().Name(), Head: e.Head().Name()}
		if g.IsRoot() {
			je.Attrs = toMap(e.Attrs())
		}
		jg.Edges = append(jg.Edges, je)
	}
	for _, s := range g.Subgraphs() {
		jg.Subgraphs = append(jg.Subgraphs, dump(s))
	}
	return jg
}

func toMap(a *graph.Attrs) map[string]string {
	if a.Len() == 0 {
		return nil
	}
	m := make(map[string]string, a.Len())
	for _, k := range a.Keys() {
		m[k], _ = a.Get(k)
	}
	return m
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

// ExportJSON writes the graph to a JSON file at path.
func ExportJSON(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

// WriteDOT writes the graph as Graphviz DOT to w.
func WriteDOT(g *graph.Graph, w io.Writer) error {
	if err := dot.Write(w, g); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "write DOT")
	}
	return nil
}

// ExportDOT writes the graph to a DOT file at path.
func ExportDOT(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteDOT(g, w) })
}

func export(path string, write func(io.Writer) error) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "close %s", path)
	}
	return nil
}
