package dot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/graphml2gv/pkg/graph"
)

func TestID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"_graphml_id", "_graphml_id"},
		{"n1", "n1"},
		{"42", "42"},
		{"-1.5", "-1.5"},
		{".5", ".5"},
		{"", `""`},
		{"node", `"node"`},
		{"Graph", `"Graph"`},
		{"1a", `"1a"`},
		{"a b", `"a b"`},
		{"%1", `"%1"`},
		{"node:color", `"node:color"`},
		{`say "hi"`, `"say \"hi\""`},
		{"two\nlines", `"two\nlines"`},
		{"<b>", `"<b>"`},
		{"über", "über"},
		{`C:\`, `"C:\\"`},
		{`a\\`, `"a\\"`},
		{`a\"b`, `"a\\\"b"`},
		{`left\l`, `"left\l"`},
		{"end\\\n", `"end\\\n"`},
	}
	for _, tt := range tests {
		if got := ID(tt.in); got != tt.want {
			t.Errorf("ID(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMarshalDirected(t *testing.T) {
	g := graph.New("G", true)
	g.SetStrict(true)
	shape := g.Declare(graph.KindNode, "shape", "box")
	label := g.Declare(graph.KindNode, "label", "")
	rankdir := g.Declare(graph.KindGraph, "rankdir", "")
	port := g.Declare(graph.KindEdge, "tailport", "")

	g.Set(g, rankdir, "LR")
	sub := g.Subgraph("cluster_0", true)
	sub.Declare(graph.KindNode, "color", "red")
	x := sub.Node("x", true)
	g.Set(x, label, "first node")
	y := g.Node("y", true)
	g.Set(y, shape, "circle")
	e := g.Edge(x, y, true)
	g.Set(e, port, "n")

	want := `strict digraph G {
	node [shape=box];
	rankdir=LR;
	subgraph cluster_0 {
		node [color=red];
		x [label="first node"];
	}
	y [shape=circle];
	x -> y [tailport=n];
}
`
	if got := string(Marshal(g)); got != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalUndirected(t *testing.T) {
	g := graph.New("", false)
	a := g.Node("a", true)
	b := g.Node("b", true)
	g.Edge(a, b, true)

	want := "graph {\n\ta;\n\tb;\n\ta -- b;\n}\n"
	if got := string(Marshal(g)); got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestMarshalSharedMembership(t *testing.T) {
	g := graph.New("G", true)
	s1 := g.Subgraph("s1", true)
	s2 := g.Subgraph("s2", true)
	a := s1.Node("a", true)
	s2.Node("a", true)
	b := s1.Node("b", true)
	s1.Edge(a, b, true)
	s2.Edge(a, b, true)

	out := string(Marshal(g))
	if n := strings.Count(out, "a -> b"); n != 1 {
		t.Errorf("edge written %d times, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "subgraph s2 {\n\t\ta;\n") {
		t.Errorf("s2 should list shared node a:\n%s", out)
	}
	if strings.Count(out, "\ta;") != 2 {
		t.Errorf("node a should appear once per subgraph and not again in the root:\n%s", out)
	}
}

func TestWriteMatchesMarshal(t *testing.T) {
	g := graph.New("G", true)
	g.Node("a", true)

	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sb.String() != string(Marshal(g)) {
		t.Error("Write and Marshal should agree")
	}
}

func TestMarshalBackslashValuesParse(t *testing.T) {
	values := []string{`C:\`, `dir\\`, `say \"hi\"`, `x\`, "tab\\\n"}

	g := graph.New("G", true)
	label := g.Declare(graph.KindNode, "label", "")
	for i, v := range values {
		n := g.Node(fmt.Sprintf("n%d", i), true)
		g.Set(n, label, v)
	}
	g.Set(g, g.Declare(graph.KindGraph, "label", ""), `root\`)

	if err := Validate(Marshal(g)); err != nil {
		t.Errorf("Validate(Marshal(g)) = %v\n%s", err, Marshal(g))
	}
}
