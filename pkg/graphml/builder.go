package graphml

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/observability"
)

// keyDecl is a GraphML <key> declaration.
type keyDecl struct {
	scope kind
	all   bool
	name  string
}

// pendingAttr is a global default declared before the root graph exists.
type pendingAttr struct {
	target      kind
	name, value string
}

// converter is the state of one document conversion. A fresh converter is
// used for every document.
type converter struct {
	ctx  context.Context
	log  *log.Logger
	line func() int

	graphName string

	text     textBuffer
	names    *nameTable
	elements elementStack
	graphs   graphStack

	active kind // element kind attributes are routed to
	closed kind // kind of the element that closed last
	global kind // scope of the global default being read, or kindNone

	node     *graph.Node
	edge     *graph.Edge
	inverted bool

	// discard drops the attribute element being read.
	discard bool
	// subgraphTouched is set once a subgraph attribute was written.
	subgraphTouched bool

	anonID  int
	keys    map[string]keyDecl
	key     *keyDecl
	pending []pendingAttr

	diags []Diagnostic
}

func newConverter(ctx context.Context, opts Options) *converter {
	l := opts.Logger
	if l == nil {
		l = log.Default()
	}
	return &converter{
		ctx:       ctx,
		log:       l,
		line:      func() int { return 0 },
		graphName: opts.GraphName,
		names:     newNameTable(),
		active:    kindGraph,
		keys:      make(map[string]keyDecl),
	}
}

// warn records an advisory diagnostic and reports it on the side channel.
func (c *converter) warn(k DiagnosticKind, format string, args ...any) {
	d := c.record(k, format, args...)
	c.log.Warn(d.Message, "line", d.Line)
}

// note records a diagnostic that is only shown in verbose mode.
func (c *converter) note(k DiagnosticKind, format string, args ...any) {
	d := c.record(k, format, args...)
	c.log.Debug(d.Message, "line", d.Line)
}

func (c *converter) record(k DiagnosticKind, format string, args ...any) Diagnostic {
	d := Diagnostic{Kind: k, Line: c.line(), Message: fmt.Sprintf(format, args...)}
	c.diags = append(c.diags, d)
	observability.Convert().OnDiagnostic(c.ctx, string(k))
	return d
}

// onOpen handles an element start.
func (c *converter) onOpen(name string, attrs []Attr) {
	if c.text.listening {
		c.text.enterComposite()
		return
	}
	switch elementOf(name) {
	case elemGraphML:
	case elemGraph:
		c.openGraph(attrs)
	case elemNode:
		c.openNode(attrs)
	case elemEdge:
		c.openEdge(attrs)
	case elemAttr:
		c.openAttr(attrs)
	case elemKey:
		c.openKey(attrs)
	case elemDefault:
		c.openDefault()
	case elemData:
		c.openData(attrs)
	case elemUnknown:
		c.warn(DiagUnknownElement, "unknown element %s - ignoring", name)
	}
}

// onClose handles an element end.
func (c *converter) onClose(name string) {
	if c.text.listening && c.text.leaveNested() {
		return
	}
	switch elementOf(name) {
	case elemGraph:
		c.closeGraph()
	case elemNode:
		c.closeNode()
	case elemEdge:
		c.closeEdge()
	case elemAttr, elemData, elemDefault:
		c.closeAttr()
	case elemKey:
		c.key = nil
	case elemGraphML, elemUnknown:
	}
}

// onText handles character data.
func (c *converter) onText(p []byte) {
	c.text.appendValue(p)
}

func (c *converter) openGraph(attrs []Attr) {
	c.active = kindGraph
	if c.closed == kindGraph && c.elements.len() > 0 && c.elements.top().kind == kindNode {
		c.warn(DiagNestedGraph, "node contains more than one graph")
	}

	id, ok := attrValue(attrs, "id")
	if !ok {
		id = c.graphName
	}

	if c.graphs.empty() {
		directed := true
		switch mode, _ := attrValue(attrs, "edgedefault"); mode {
		case "directed":
		case "undirected":
			directed = false
		default:
			c.note(DiagNoEdgeDefault, "graph has no edgedefault attribute - assume directed")
		}
		c.graphs.push(graph.New(id, directed))
		c.applyPending()
	} else {
		if isAnonymous(id) {
			c.anonID++
			id = fmt.Sprintf("%%%d", c.anonID)
		}
		c.graphs.push(c.graphs.current.Subgraph(id, true))
	}
	c.elements.push(id, kindGraph)
}

func (c *converter) closeGraph() {
	c.graphs.pop()
	c.elements.pop()
	c.closed = kindGraph
}

func (c *converter) openNode(attrs []Attr) {
	c.active = kindNode
	c.closed = kindNone
	c.node = nil

	id, ok := attrValue(attrs, "id")
	if !ok {
		c.warn(DiagMissingID, "node without id ignored")
		c.elements.push("", kindNode)
		return
	}
	if c.graphs.current == nil {
		c.warn(DiagOutsideGraph, "node %s outside graph, ignored", id)
	} else {
		c.node = c.graphs.current.Node(id, true)
	}
	c.elements.push(id, kindNode)
}

// closeNode drops nodes that only wrapped a nested graph: their single
// purpose was to carry the subgraph.
func (c *converter) closeNode() {
	top := c.elements.top()
	if c.closed == kindGraph && top.id != "" && c.graphs.root != nil {
		root := c.graphs.root
		if n, ok := root.FindNode(top.id); ok {
			root.DeleteNode(n)
		}
	}
	c.elements.pop()
	c.active = kindGraph
	c.node = nil
	c.closed = kindNode
}

func (c *converter) openEdge(attrs []Attr) {
	c.active = kindEdge
	c.edge = nil

	tail, okTail := attrValue(attrs, "source")
	head, okHead := attrValue(attrs, "target")
	tail = c.names.resolve(tail)
	head = c.names.resolve(head)

	g := c.graphs.current
	switch {
	case g == nil:
		c.warn(DiagOutsideGraph, "edge source %s target %s outside graph, ignored", tail, head)
		return
	case !okTail || !okHead:
		c.warn(DiagMissingEndpoint, "edge source %q target %q incomplete, ignored", tail, head)
		return
	}

	c.edge = g.Edge(g.Node(tail, true), g.Node(head, true), true)
	switch c.edge.Tail().Name() {
	case tail:
		c.inverted = false
	case head:
		c.inverted = true
	}

	if id, ok := attrValue(attrs, "id"); ok {
		c.setEdgeAttr(c.edge, keyID, id)
	}
	if port, ok := attrValue(attrs, "sourceport"); ok {
		c.setEdgeAttr(c.edge, "tailport", port)
	}
	if port, ok := attrValue(attrs, "targetport"); ok {
		c.setEdgeAttr(c.edge, "headport", port)
	}
}

func (c *converter) closeEdge() {
	c.active = kindGraph
	c.edge = nil
	c.closed = kindEdge
	c.inverted = false
}

// isAnonymous reports whether name is "%" followed only by digits.
func isAnonymous(name string) bool {
	if len(name) == 0 || name[0] != '%' {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
