package graphml

import (
	"testing"

	"github.com/matzehuels/graphml2gv/pkg/graph"
)

// expectFatal runs fn and fails unless it raises a converter invariant.
func expectFatal(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		f, ok := r.(fatal)
		if !ok {
			t.Fatalf("recover() = %v, want fatal", r)
		}
		if want != "" && f.msg != want {
			t.Errorf("fatal message = %q, want %q", f.msg, want)
		}
	}()
	fn()
}

func TestElementStack(t *testing.T) {
	var s elementStack
	s.push("G", kindGraph)
	s.push("n1", kindNode)

	if s.len() != 2 {
		t.Fatalf("len() = %d, want 2", s.len())
	}
	if top := s.top(); top.id != "n1" || top.kind != kindNode {
		t.Errorf("top() = %+v, want n1/node", top)
	}
	s.pop()
	if top := s.top(); top.id != "G" {
		t.Errorf("top() after pop = %q, want G", top.id)
	}
	s.pop()
	if s.len() != 0 {
		t.Errorf("len() = %d, want 0", s.len())
	}
}

func TestElementStackUnderflow(t *testing.T) {
	var s elementStack
	expectFatal(t, "empty element stack", func() { s.pop() })
	expectFatal(t, "empty element stack", func() { s.top() })
}

func TestGraphStack(t *testing.T) {
	var s graphStack
	if !s.empty() {
		t.Fatal("new stack should be empty")
	}

	root := graph.New("G", true)
	sub := root.Subgraph("cluster", true)

	s.push(root)
	s.push(sub)
	if s.root != root {
		t.Error("first push should set the root")
	}
	if s.current != sub {
		t.Error("current should be the innermost graph")
	}
	if s.depth() != 2 {
		t.Errorf("depth() = %d, want 2", s.depth())
	}

	if got := s.pop(); got != sub {
		t.Errorf("pop() = %v, want subgraph", got.Name())
	}
	if s.current != root {
		t.Error("current should fall back to the parent")
	}

	s.pop()
	if !s.empty() {
		t.Error("stack should be empty after popping the root")
	}
	if s.current != root {
		t.Error("popping the root should leave it current")
	}
}

func TestGraphStackUnderflow(t *testing.T) {
	var s graphStack
	expectFatal(t, "graph stack underflow in graph parser", func() { s.pop() })
}
