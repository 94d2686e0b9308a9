package dot

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphml2gv/pkg/cache"
	errs "github.com/matzehuels/graphml2gv/pkg/errors"
	"github.com/matzehuels/graphml2gv/pkg/observability"
)

// Renderer renders DOT text with Graphviz, consulting a cache first.
type Renderer struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
	log   *log.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithKeyer sets the keyer used to derive artifact keys.
func WithKeyer(k cache.Keyer) RendererOption {
	return func(r *Renderer) {
		if k != nil {
			r.keyer = k
		}
	}
}

// WithTTL sets how long rendered artifacts stay cached. Zero keeps them
// until removed.
func WithTTL(ttl time.Duration) RendererOption {
	return func(r *Renderer) { r.ttl = ttl }
}

// WithLogger sets the logger cache failures are reported to.
func WithLogger(l *log.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRenderer returns a renderer backed by c. A nil cache disables caching.
func NewRenderer(c cache.Cache, opts ...RendererOption) *Renderer {
	if c == nil {
		c = cache.NewNullCache()
	}
	r := &Renderer{
		cache: c,
		keyer: cache.NewDefaultKeyer(),
		log:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders src to format, which must be "svg" or "png".
// Cache failures are logged and otherwise ignored.
func (r *Renderer) Render(ctx context.Context, src []byte, format string) (out []byte, err error) {
	format = strings.ToLower(format)
	gvFormat, ok := formats[format]
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "cannot render %s with graphviz (must be 'svg' or 'png')", format)
	}

	start := time.Now()
	cached := false
	observability.Render().OnRenderStart(ctx, format)
	defer func() {
		observability.Render().OnRenderComplete(ctx, format, len(out), cached, time.Since(start), err)
	}()

	key := r.keyer.ArtifactKey(cache.Hash(src), cache.ArtifactKeyOpts{Format: format})
	if data, hit, cerr := r.cache.Get(ctx, key); cerr != nil {
		r.log.Warn("cache read failed", "error", cerr)
	} else if hit {
		cached = true
		return data, nil
	}

	out, err = render(ctx, src, gvFormat)
	if err != nil {
		return nil, err
	}
	if cerr := r.cache.Set(ctx, key, out, r.ttl); cerr != nil {
		r.log.Warn("cache write failed", "error", cerr)
	}
	return out, nil
}

var formats = map[string]graphviz.Format{
	errs.FormatSVG: graphviz.SVG,
	errs.FormatPNG: graphviz.PNG,
}

func render(ctx context.Context, src []byte, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// Validate parses src with Graphviz and reports whether it is valid DOT.
func Validate(src []byte) error {
	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "parse DOT")
	}
	return g.Close()
}
