package io

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/graphml"
)

// ReadGraphML converts the GraphML document read from r.
func ReadGraphML(ctx context.Context, r io.Reader, opts graphml.Options) (*graphml.Result, error) {
	return graphml.Decode(ctx, r, opts)
}

// ImportGraphML opens path and converts it. opts.Source defaults to path.
func ImportGraphML(ctx context.Context, path string, opts graphml.Options) (*graphml.Result, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if opts.Source == "" {
		opts.Source = path
	}
	return ReadGraphML(ctx, f, opts)
}

// ReadJSON rebuilds a graph written by [WriteJSON].
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed, a kind
// is unknown, an edge names a node missing from its graph or two subgraphs
// of one parent share a name.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode graph JSON")
	}

	g := graph.New(doc.Graph.Name, doc.Directed)
	g.SetStrict(doc.Strict)
	for _, k := range kinds {
		for _, s := range doc.Declarations[k.String()] {
			g.Declare(k, s.Name, s.Default)
		}
	}
	for name := range doc.Declarations {
		if _, ok := kindOf(name); !ok {
			return nil, errs.New(errs.ErrCodeInvalidInput, "unknown declaration kind %q", name)
		}
	}

	b := builder{root: g}
	if err := b.fill(g, doc.Graph); err != nil {
		return nil, err
	}
	return g, nil
}

// ImportJSON reads a graph from a JSON file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func open(path string) (*os.File, error) {
	if err := errs.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "can't open %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "can't open %s", path)
	}
	return f, nil
}

type builder struct {
	root *graph.Graph
}

func (b builder) fill(g *graph.Graph, jg jsonGraph) error {
	for kind := range jg.Defaults {
		if _, ok := kindOf(kind); !ok {
			return errs.New(errs.ErrCodeInvalidInput, "graph %s: unknown defaults kind %q", jg.Name, kind)
		}
	}
	for _, k := range kinds {
		defs := jg.Defaults[k.String()]
		for _, key := range sortedKeys(defs) {
			g.Declare(k, key, defs[key])
		}
	}
	b.set(g, graph.KindGraph, jg.Attrs)

	for _, jn := range jg.Nodes {
		n := g.Node(jn.Name, true)
		b.set(n, graph.KindNode, jn.Attrs)
	}
	for _, je := range jg.Edges {
		tail, head := g.Node(je.Tail, false), g.Node(je.Head, false)
		if tail == nil || head == nil {
			return errs.New(errs.ErrCodeInvalidInput, "graph %s: edge %s-%s references an unknown node", jg.Name, je.Tail, je.Head)
		}
		b.set(g.Edge(tail, head, true), graph.KindEdge, je.Attrs)
	}

	for _, js := range jg.Subgraphs {
		if g.Subgraph(js.Name, false) != nil {
			return errs.New(errs.ErrCodeInvalidInput, "graph %s: duplicate subgraph %s", jg.Name, js.Name)
		}
		if err := b.fill(g.Subgraph(js.Name, true), js); err != nil {
			return err
		}
	}
	return nil
}

func (b builder) set(obj graph.Object, k graph.Kind, attrs map[string]string) {
	for _, key := range sortedKeys(attrs) {
		sym := b.root.Lookup(k, key)
		if sym == nil {
			sym = b.root.Declare(k, key, "")
		}
		b.root.Set(obj, sym, attrs[key])
	}
}
