package graphml

import (
	"fmt"

	"github.com/matzehuels/graphml2gv/pkg/graph"
)

// fatal carries a broken converter invariant up to Decode, which turns it
// into an INTERNAL_ERROR. Nothing else recovers it.
type fatal struct{ msg string }

func fatalf(format string, args ...any) {
	panic(fatal{msg: fmt.Sprintf(format, args...)})
}

// frame is one open graph or node element.
type frame struct {
	id   string
	kind kind
}

// elementStack records the identifiers of the open graph and node elements.
type elementStack struct {
	frames []frame
}

func (s *elementStack) push(id string, k kind) {
	s.frames = append(s.frames, frame{id: id, kind: k})
}

func (s *elementStack) pop() {
	if len(s.frames) == 0 {
		fatalf("empty element stack")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *elementStack) top() frame {
	if len(s.frames) == 0 {
		fatalf("empty element stack")
	}
	return s.frames[len(s.frames)-1]
}

func (s *elementStack) len() int { return len(s.frames) }

// graphStack holds the open graph and subgraph handles. The first graph
// pushed onto an empty stack becomes the root.
type graphStack struct {
	items   []*graph.Graph
	root    *graph.Graph
	current *graph.Graph
}

func (s *graphStack) push(g *graph.Graph) {
	if len(s.items) == 0 {
		s.root = g
	}
	s.items = append(s.items, g)
	s.current = g
}

// pop removes the innermost graph. Closing the root leaves it current so
// that trailing elements still resolve against it.
func (s *graphStack) pop() *graph.Graph {
	if len(s.items) == 0 {
		fatalf("graph stack underflow in graph parser")
	}
	g := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	if len(s.items) > 0 {
		s.current = s.items[len(s.items)-1]
	}
	return g
}

func (s *graphStack) empty() bool { return len(s.items) == 0 }

func (s *graphStack) depth() int { return len(s.items) }
