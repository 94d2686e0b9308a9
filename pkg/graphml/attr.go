package graphml

import (
	"strings"

	"github.com/matzehuels/graphml2gv/pkg/graph"
)

const (
	// keyID holds an object's name before a rename, and edge ids.
	keyID = "_graphml_id"

	nodePrefix = "node:"
	edgePrefix = "edge:"
)

func (c *converter) openAttr(attrs []Attr) {
	name, _ := attrValue(attrs, "name")
	if scope, ok := attrValue(attrs, "for"); ok {
		if k, ok := kindOf(scope); ok {
			c.global = k
		} else {
			c.warn(DiagUnknownScope, "attribute %s has unknown scope %q, treated as per-object", name, scope)
		}
	}
	c.text.setName(name)
	c.text.beginListening()
}

func (c *converter) openKey(attrs []Attr) {
	id, _ := attrValue(attrs, "id")
	d := keyDecl{name: id}
	if name, ok := attrValue(attrs, "attr.name"); ok && name != "" {
		d.name = name
	}
	switch scope, _ := attrValue(attrs, "for"); scope {
	case "all":
		d.all = true
	default:
		if k, ok := kindOf(scope); ok {
			d.scope = k
		} else {
			d.scope = kindNone
		}
	}
	c.keys[id] = d
	c.key = &d
}

// openDefault starts a global default declaration for the enclosing key.
func (c *converter) openDefault() {
	switch {
	case c.key == nil:
		c.warn(DiagOrphanAttr, "default outside key ignored")
		c.discard = true
	case c.key.all || c.key.scope == kindNone:
		c.warn(DiagUnknownScope, "default for key %s has no single scope, ignored", c.key.name)
		c.discard = true
	default:
		c.global = c.key.scope
		switch c.key.scope {
		case kindNode:
			c.text.setName(nodePrefix + c.key.name)
		case kindEdge:
			c.text.setName(edgePrefix + c.key.name)
		default:
			c.text.setName(c.key.name)
		}
	}
	c.text.beginListening()
}

func (c *converter) openData(attrs []Attr) {
	id, _ := attrValue(attrs, "key")
	name := id
	if d, ok := c.keys[id]; ok {
		name = d.name
	}
	c.text.setName(name)
	c.text.beginListening()
}

// closeAttr completes an attribute element and routes it.
func (c *converter) closeAttr() {
	c.text.endListening()
	c.closed = kindNone
	name, value := c.text.take()

	if c.discard {
		c.discard = false
		c.global = kindNone
		return
	}
	c.route(c.global, name, value)
	c.global = kindNone
}

func (c *converter) route(target kind, name, value string) {
	g := c.graphs.current
	if target != kindNone && g == nil {
		c.pending = append(c.pending, pendingAttr{target: target, name: name, value: value})
		return
	}
	switch target {
	case kindNone:
		c.setAttr(name, value)
	case kindNode:
		c.setGlobalAttr(g, target.model(), nodePrefix, name, value)
	case kindEdge:
		c.setGlobalAttr(g, target.model(), edgePrefix, name, value)
	case kindGraph:
		c.setGraphAttr(g, name, value)
	}
}

// applyPending replays global defaults declared ahead of the root graph.
func (c *converter) applyPending() {
	pending := c.pending
	c.pending = nil
	for _, p := range pending {
		c.route(p.target, p.name, p.value)
	}
}

// setAttr sets a per-object attribute on the active element.
func (c *converter) setAttr(name, value string) {
	switch c.active {
	case kindGraph:
		if c.graphs.current == nil {
			c.warn(DiagOrphanAttr, "attribute %s outside graph ignored", name)
			return
		}
		c.setGraphAttr(c.graphs.current, name, value)
	case kindNode:
		if c.node == nil {
			c.warn(DiagOrphanAttr, "attribute %s of ignored node dropped", name)
			return
		}
		c.setNodeAttr(c.node, name, value)
	case kindEdge:
		if c.edge == nil {
			c.warn(DiagOrphanAttr, "attribute %s of ignored edge dropped", name)
			return
		}
		c.setEdgeAttr(c.edge, name, value)
	}
}

func (c *converter) setGraphAttr(g *graph.Graph, name, value string) {
	root := c.graphs.root
	switch {
	case name == "strict" && g == root:
		if value != "true" {
			break
		}
		if c.subgraphTouched {
			c.warn(DiagStrict, "strict set after subgraph attributes, ignored")
			return
		}
		root.SetStrict(true)
		return
	case name == "name":
		c.setName(g, value)
		return
	}
	if g != root {
		c.subgraphTouched = true
	}
	root.Set(g, c.declared(graph.KindGraph, name), value)
}

func (c *converter) setNodeAttr(n *graph.Node, name, value string) {
	if name == "name" {
		c.setName(n, value)
		return
	}
	c.graphs.root.Set(n, c.declared(graph.KindNode, name), value)
}

// setEdgeAttr swaps headport and tailport on inverted edges so each port
// lands on the endpoint the document meant.
func (c *converter) setEdgeAttr(e *graph.Edge, name, value string) {
	if c.inverted {
		switch name {
		case "headport":
			name = "tailport"
		case "tailport":
			name = "headport"
		}
	}
	c.graphs.root.Set(e, c.declared(graph.KindEdge, name), value)
}

// declared returns the root declaration of name, declaring it with an
// empty default first if needed.
func (c *converter) declared(k graph.Kind, name string) *graph.Sym {
	root := c.graphs.root
	if sym := root.Lookup(k, name); sym != nil {
		return sym
	}
	return root.Declare(k, name, "")
}

// setGlobalAttr declares a node or edge default on g. Names should carry
// the scope prefix; a missing prefix is reported and the name used as is.
// Declaring on a subgraph registers the key on the root as well.
func (c *converter) setGlobalAttr(g *graph.Graph, k graph.Kind, prefix, name, value string) {
	if rest, ok := strings.CutPrefix(name, prefix); ok {
		name = rest
	} else {
		c.warn(DiagMissingPrefix, "global %s attribute %s in graph %s does not begin with the prefix %s",
			k, name, g.Name(), prefix)
	}
	g.Declare(k, name, value)
}

// setName renames obj, keeping its previous name under keyID and in the
// name table so later edges can still refer to it.
func (c *converter) setName(obj graph.Object, value string) {
	root := c.graphs.root
	sym := c.declared(obj.Kind(), keyID)
	root.Set(obj, sym, obj.Name())
	prior := root.Get(obj, sym)
	c.names.insert(prior, value)
	if err := root.Rename(obj, value); err != nil {
		c.warn(DiagRename, "cannot rename %s %s to %s: %v", obj.Kind(), prior, value, err)
	}
}
