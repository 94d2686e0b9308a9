package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/graph"
	"github.com/matzehuels/graphml2gv/pkg/graphml"
	gio "github.com/matzehuels/graphml2gv/pkg/io"
	"github.com/matzehuels/graphml2gv/pkg/render/dot"
)

// convertOpts holds the command-line flags for conversion.
type convertOpts struct {
	graphName  string        // template for graph names
	output     string        // output file path, stdout if empty
	format     string        // dot, json, svg or png
	verbose    bool          // debug logging and per-graph statistics
	configPath string        // explicit config file
	noCache    bool          // bypass the render cache
	cacheTTL   time.Duration // render cache expiry
}

// convertCommand creates the root command, which converts GraphML files.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{format: errs.FormatDOT}

	cmd := &cobra.Command{
		Use:   "graphml2gv [files...]",
		Short: "Convert GraphML to Graphviz",
		Long: `graphml2gv reads GraphML documents and writes them as Graphviz graphs.

With no files, the document is read from standard input. Every input produces
one graph; graphs without an id are named after the -g template, the first
verbatim and later ones with a running count appended.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadOptions(cmd, &opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.graphName, "graph-name", "g", "", "template for graph names")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, json, svg, png")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not read or write the render cache")
	f.DurationVar(&opts.cacheTTL, "cache-ttl", 0, "expiry of rendered artifacts (0 keeps them)")

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphml2gv/config.toml)")

	return cmd
}

// loadOptions merges the config file into opts, validates the result and
// sets the log level.
func (c *CLI) loadOptions(cmd *cobra.Command, opts *convertOpts) error {
	path, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			path = ""
		}
	}
	if path != "" {
		cfg, unknown, err := loadConfig(path, explicit)
		if err != nil {
			return err
		}
		for _, key := range unknown {
			c.Logger.Warn("unknown config key", "key", key, "file", path)
		}
		cfg.apply(cmd, opts)
	}

	if opts.verbose {
		c.SetLogLevel(LogDebug)
	}
	opts.format = strings.ToLower(opts.format)
	if err := errs.ValidateFormat(opts.format); err != nil {
		return err
	}
	if err := errs.ValidateGraphName(opts.graphName); err != nil {
		return err
	}
	if opts.output != "" {
		if err := errs.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	return nil
}

// stdinName stands for standard input in logs and hooks.
const stdinName = "<stdin>"

// runConvert converts every input in order. An input that cannot be opened
// is reported and skipped. A malformed document is reported, the remaining
// inputs are converted and the run fails at the end. An internal error
// stops the run at once.
func (c *CLI) runConvert(ctx context.Context, files []string, opts convertOpts) error {
	logger := c.Logger
	ctx = withLogger(ctx, logger)

	out, err := c.newSink(opts)
	if err != nil {
		return err
	}
	defer out.close()

	if len(files) == 0 {
		files = []string{stdinName}
	}

	malformed := 0
	count := 0
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := c.convertOne(ctx, name, nameOf(opts.graphName, count))
		switch {
		case errs.IsFatal(err):
			return err
		case errs.Is(err, errs.ErrCodeFileNotFound), errs.Is(err, errs.ErrCodeInvalidPath):
			logger.Error(errs.UserMessage(err))
			continue
		case err != nil:
			logger.Error(errs.UserMessage(err), "input", name, "line", errs.LineOf(err))
			malformed++
			continue
		case res.Graph == nil:
			continue
		}
		count++

		if opts.verbose {
			logger.Infof("%s: %d nodes %d edges", res.Graph.Name(), res.Graph.NodeCount(), res.Graph.EdgeCount())
		}
		if err := out.write(ctx, res.Graph, count-1); err != nil {
			return err
		}
	}

	if malformed > 0 {
		return errs.New(errs.ErrCodeMalformed, "%d of the inputs were malformed", malformed)
	}
	return nil
}

// convertOne converts a single input, logging its diagnostics through the
// context's logger tagged with the input name.
func (c *CLI) convertOne(ctx context.Context, name, graphName string) (*graphml.Result, error) {
	opts := graphml.Options{
		GraphName: graphName,
		Logger:    loggerFromContext(ctx).With("input", name),
		Source:    name,
	}
	if name == stdinName {
		return gio.ReadGraphML(ctx, c.stdin, opts)
	}
	return gio.ImportGraphML(ctx, name, opts)
}

// nameOf returns the name for the graph produced after cnt others: the
// template itself first, then the template with cnt appended. An empty
// template stays empty.
func nameOf(template string, cnt int) string {
	if template == "" || cnt == 0 {
		return template
	}
	return fmt.Sprintf("%s%d", template, cnt)
}

// =============================================================================
// Output
// =============================================================================

// sink writes converted graphs in the selected format.
type sink struct {
	cli      *CLI
	opts     convertOpts
	w        io.Writer
	f        *os.File
	renderer *dot.Renderer
}

func (c *CLI) newSink(opts convertOpts) (*sink, error) {
	s := &sink{cli: c, opts: opts, w: c.stdout}

	switch opts.format {
	case errs.FormatSVG, errs.FormatPNG:
		store, err := newCache(opts.noCache)
		if err != nil {
			c.Logger.Warn("cache unavailable", "error", err)
			store = nil
		}
		s.renderer = dot.NewRenderer(store,
			dot.WithKeyer(artifactKeyer()),
			dot.WithTTL(opts.cacheTTL),
			dot.WithLogger(c.Logger))
		return s, nil
	}

	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPath, err, "could not open file %s for writing", opts.output)
		}
		s.f, s.w = f, f
	}
	return s, nil
}

// write emits graph number n (counting from zero).
func (s *sink) write(ctx context.Context, g *graph.Graph, n int) error {
	switch s.opts.format {
	case errs.FormatJSON:
		return gio.WriteJSON(g, s.w)
	case errs.FormatSVG, errs.FormatPNG:
		return s.render(ctx, g, n)
	default:
		return gio.WriteDOT(g, s.w)
	}
}

// render writes an image. Images cannot be concatenated, so with -o the
// n-th image goes to a file numbered like the graph names.
func (s *sink) render(ctx context.Context, g *graph.Graph, n int) error {
	prog := newProgress(loggerFromContext(ctx))
	sp := newSpinner(ctx, s.cli.stderr, "Rendering "+s.opts.format)
	sp.Start()
	data, err := s.renderer.Render(ctx, dot.Marshal(g), s.opts.format)
	sp.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", s.opts.format))

	if s.opts.output == "" {
		_, err := io.Copy(s.w, bytes.NewReader(data))
		return err
	}
	path := numbered(s.opts.output, n)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", path)
	}
	printFile(path)
	return nil
}

// numbered inserts n before the extension of path; n == 0 keeps path.
func numbered(path string, n int) string {
	if n == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s%d%s", strings.TrimSuffix(path, ext), n, ext)
}

func (s *sink) close() {
	if s.f != nil {
		if err := s.f.Close(); err != nil {
			s.cli.Logger.Error("close output", "error", err)
		}
	}
}
