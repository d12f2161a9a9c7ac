package packer

import (
	"context"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"

	"asset-packer/internal/config"
	"asset-packer/internal/diagnostic"
	"asset-packer/internal/discover"
	"asset-packer/internal/emit"
	"asset-packer/internal/encode"
)

// Packer packs the assets described by a Config into one header.
type Packer struct {
	cfg   *config.Config
	out   io.Writer
	log   zerolog.Logger
	check bool
	stage Stage
}

// Option configures a Packer.
type Option func(*Packer)

// WithOutput sets where progress lines are printed. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(p *Packer) { p.out = w }
}

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Packer) { p.log = l }
}

// WithCheck makes Run compare the header with the file on disk instead of
// writing it.
func WithCheck(check bool) Option {
	return func(p *Packer) { p.check = check }
}

// New creates a Packer for cfg.
func New(cfg *config.Config, opts ...Option) *Packer {
	p := &Packer{
		cfg: cfg,
		out: io.Discard,
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Result describes a completed run.
type Result struct {
	// Files are the discovered paths, sorted.
	Files []string
	// Assets are the compressed assets in emission order.
	Assets []*encode.CompressedAsset
	// Empty is set when no supported file was found; nothing was emitted.
	Empty bool
	// Written is set when the output file was (re)written.
	Written bool
	// Staleness is set in check mode.
	Staleness *emit.Staleness
	// Diagnostics collects warnings, and one info per encoded asset.
	Diagnostics diagnostic.Diagnostics
}

// Stage returns how far the last Run got.
func (p *Packer) Stage() Stage {
	return p.stage
}

// Run executes the pipeline once.
func (p *Packer) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	p.setStage(StageDiscovering)

	files, err := discover.Discover(p.cfg)
	if err != nil {
		return nil, err
	}

	res.Files = files

	if len(files) == 0 {
		res.Empty = true
		res.Diagnostics.AddWarning("empty_input", "no matching files found", p.cfg.AssetRoot)
		fmt.Fprintf(p.out, "No matching files found in %s\n", p.cfg.AssetRoot)
		p.setStage(StageDone)

		return res, nil
	}

	p.setStage(StageEncoding)

	if diags := CheckIdentifiers(p.cfg, files); diags.HasErrors() {
		return nil, diags.Error()
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		asset, err := encode.Encode(p.cfg, path)
		if err != nil {
			return nil, err
		}

		res.Diagnostics.AddInfo("asset_encoded",
			fmt.Sprintf("%d bytes compressed to %d", asset.RawLen, asset.Len()), asset.RelPath)
		fmt.Fprintf(p.out, "Added: %s as %s with MIME %s\n", asset.RelPath, asset.ArrayName(), asset.MIME)

		res.Assets = append(res.Assets, asset)
	}

	p.setStage(StageEmitting)

	content, err := emit.Render(res.Assets)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.check {
		st, err := emit.Check(p.cfg.OutputPath, content)
		if err != nil {
			return nil, err
		}

		res.Staleness = st
		p.reportStaleness(res)
	} else {
		if err := emit.WriteFile(p.cfg.OutputPath, content); err != nil {
			return nil, err
		}

		res.Written = true
		fmt.Fprintf(p.out, "\nAll files combined into: %s\n", p.cfg.OutputPath)
	}

	p.setStage(StageDone)

	return res, nil
}

func (p *Packer) setStage(s Stage) {
	p.stage = s
	p.log.Debug().Stringer("stage", s).Msg("stage")
}

func (p *Packer) reportStaleness(res *Result) {
	st := res.Staleness
	if st.Fresh() {
		fmt.Fprintf(p.out, "\n%s is up to date\n", p.cfg.OutputPath)
		return
	}

	var related []string
	for _, id := range st.Added {
		related = append(related, "+"+id)
	}

	for _, id := range st.Removed {
		related = append(related, "-"+id)
	}

	for _, id := range st.Changed {
		related = append(related, "~"+id)
	}

	msg := "generated header is out of date"
	if st.Missing {
		msg = "generated header does not exist"
	}

	res.Diagnostics.AddWarning("stale_output", msg, p.cfg.OutputPath, related...)
	fmt.Fprintf(p.out, "\n%s is stale\n", p.cfg.OutputPath)

	for _, r := range related {
		fmt.Fprintf(p.out, "  %s\n", r)
	}
}

// CheckIdentifiers reports every identifier that more than one path maps to.
// Identifiers depend on paths only, so this runs before any file is read.
func CheckIdentifiers(cfg *config.Config, files []string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	byID := make(map[string][]string)

	for _, path := range files {
		rel, err := filepath.Rel(cfg.AssetRoot, path)
		if err != nil {
			rel = path
		}

		id := encode.Identifier(rel)
		byID[id] = append(byID[id], filepath.ToSlash(rel))
	}

	for _, id := range slices.Sorted(maps.Keys(byID)) {
		paths := byID[id]
		if len(paths) < 2 {
			continue
		}

		res.AddError("identifier_collision",
			fmt.Sprintf("%d files map to the same identifier", len(paths)), id, paths...)
	}

	return res
}
