package cli

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
)

// fileConfig is the TOML config file.
//
//	graph_name = "G"
//	format = "svg"
//	output = "out.svg"
//	verbose = true
//	no_cache = false
//	cache_ttl = "24h"
type fileConfig struct {
	GraphName *string   `toml:"graph_name"`
	Format    *string   `toml:"format"`
	Output    *string   `toml:"output"`
	Verbose   *bool     `toml:"verbose"`
	NoCache   *bool     `toml:"no_cache"`
	CacheTTL  *duration `toml:"cache_ttl"`
}

// duration decodes TOML strings such as "90m".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	d.Duration = v
	return nil
}

// loadConfig reads the config file at path. With explicit unset, a missing
// default file yields an empty config; a missing explicit file is an error.
func loadConfig(path string, explicit bool) (fileConfig, []string, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil, nil
		}
		return fileConfig{}, nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

// apply copies config values into opts for every flag not set on the
// command line.
func (cfg fileConfig) apply(cmd *cobra.Command, opts *convertOpts) {
	flags := cmd.Flags()
	if cfg.GraphName != nil && !flags.Changed("graph-name") {
		opts.graphName = *cfg.GraphName
	}
	if cfg.Format != nil && !flags.Changed("format") {
		opts.format = strings.ToLower(*cfg.Format)
	}
	if cfg.Output != nil && !flags.Changed("output") {
		opts.output = *cfg.Output
	}
	if cfg.Verbose != nil && !flags.Changed("verbose") {
		opts.verbose = *cfg.Verbose
	}
	if cfg.NoCache != nil && !flags.Changed("no-cache") {
		opts.noCache = *cfg.NoCache
	}
	if cfg.CacheTTL != nil && !flags.Changed("cache-ttl") {
		opts.cacheTTL = cfg.CacheTTL.Duration
	}
}
