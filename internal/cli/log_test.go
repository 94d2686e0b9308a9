package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const unknownElementDoc = `<graphml>
  <graph id="G" edgedefault="directed">
    <node id="a"/>
    <hyperedge/>
  </graph>
</graphml>`

const noEdgeDefaultDoc = `<graphml>
  <graph id="G">
    <node id="a"/>
  </graph>
</graphml>`

func TestDiagnosticsReachLogger(t *testing.T) {
	path := writeFile(t, "doc.graphml", unknownElementDoc)

	c, _, stderr := testCLI(t, "")
	if err := run(c, path); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := stderr.String()
	for _, want := range []string{"WARN", "unknown element hyperedge", "input=" + path, "line=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr lacks %q:\n%s", want, out)
		}
	}
}

func TestVerboseShowsNotes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "info level",
			notWant: []string{"edgedefault", "nodes"},
		},
		{
			name: "verbose",
			args: []string{"-v"},
			want: []string{"DEBU", "no edgedefault attribute", "G: 1 nodes 0 edges"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, stderr := testCLI(t, noEdgeDefaultDoc)
			if err := run(c, tt.args...); err != nil {
				t.Fatalf("run: %v", err)
			}
			out := stderr.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("stderr lacks %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("stderr should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestConvertOneLogsThroughContext(t *testing.T) {
	c, _, stderr := testCLI(t, unknownElementDoc)

	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))
	res, err := c.convertOne(ctx, stdinName, "G")
	if err != nil {
		t.Fatalf("convertOne: %v", err)
	}
	if len(res.Diagnostics) != 1 {
		t.Errorf("diagnostics = %v, want one", res.Diagnostics)
	}
	if !strings.Contains(buf.String(), "input="+stdinName) {
		t.Errorf("context logger lacks the diagnostic:\n%s", buf.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("CLI logger should stay silent, got:\n%s", stderr.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered svg")

	if !strings.Contains(buf.String(), "Rendered svg (") {
		t.Errorf("progress output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
