package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/graphml"
	gio "github.com/matzehuels/graphml2gv/pkg/io"
)

// inspectCommand creates the inspect command, which converts a document
// without writing it and reports what the converter saw.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the diagnostics and renames of a GraphML document",
		Long: `Convert a GraphML document and show a summary of the resulting graph
together with the diagnostics raised during conversion.

On a terminal the diagnostics are shown in an interactive list; use --plain
or redirect the output to print a table instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 && args[0] != "-" {
				name = args[0]
			}
			return c.runInspect(cmd.Context(), name, plain || !isTerminal(c.stdout))
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a table instead of the interactive list")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, name string, plain bool) error {
	opts := graphml.Options{
		// Diagnostics are shown below, not logged.
		Logger: log.New(io.Discard),
		Source: name,
	}

	var (
		res *graphml.Result
		err error
	)
	if name == stdinName {
		res, err = gio.ReadGraphML(ctx, c.stdin, opts)
	} else {
		res, err = gio.ImportGraphML(ctx, name, opts)
	}
	if err != nil {
		if line := errs.LineOf(err); line > 0 {
			return fmt.Errorf("%s: %s at line %d", name, errs.UserMessage(err), line)
		}
		return err
	}

	out := uiOut
	uiOut = c.stdout
	defer func() { uiOut = out }()

	printSummary(name, res)

	if plain {
		if len(res.Diagnostics) > 0 {
			fmt.Fprintln(c.stdout, diagnosticsTable(res.Diagnostics, -1).Render())
		}
		return nil
	}

	title := fmt.Sprintf("%s: %d diagnostics", name, len(res.Diagnostics))
	p := tea.NewProgram(NewDiagnosticsModel(title, res.Diagnostics),
		tea.WithContext(ctx),
		tea.WithInput(c.stdin),
		tea.WithOutput(c.stdout))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// printSummary prints the shape of the converted graph and its renames.
func printSummary(name string, res *graphml.Result) {
	g := res.Graph
	if g == nil {
		printInfo("%s declares no graph", name)
		return
	}

	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	if g.Strict() {
		kind = "strict " + kind
	}
	printKeyValue("Graph", g.Name())
	printKeyValue("Kind", kind)
	printKeyValue("Nodes", StyleNumber.Render(strconv.Itoa(g.NodeCount())))
	printKeyValue("Edges", StyleNumber.Render(strconv.Itoa(g.EdgeCount())))
	printKeyValue("Subgraphs", StyleNumber.Render(strconv.Itoa(countSubgraphs(g))))
	printKeyValue("Diagnostics", StyleNumber.Render(strconv.Itoa(len(res.Diagnostics))))

	for _, r := range res.Renames {
		printDetail("%s %s %s", r.From, iconArrow, r.To)
	}
}

func countSubgraphs(g *graph.Graph) int {
	n := 0
	for _, s := range g.Subgraphs() {
		n += 1 + countSubgraphs(s)
	}
	return n
}
