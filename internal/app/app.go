// Package app wires the pipeline stages for one extraction run: acquire the
// document, locate the table, extract headers and rows, project heroes, and
// write the JSON envelope.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/herotable/internal/fetch"
	"github.com/hyperifyio/herotable/internal/hero"
	"github.com/hyperifyio/herotable/internal/source"
	"github.com/hyperifyio/herotable/internal/table"
)

type App struct {
	cfg    Config
	client *fetch.Client
}

func New(cfg Config) *App {
	return &App{
		cfg: cfg,
		client: &fetch.Client{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		},
	}
}

// Run executes the full pipeline and writes the result envelope to the
// configured output path. Every failure aborts the run; only rows whose cell
// count disagrees with the header arity are tolerated and skipped.
func (a *App) Run(ctx context.Context) error {
	doc, resolved, err := source.Load(ctx, a.client, a.cfg.Source)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	log.Debug().Str("source", resolved).Msg("document loaded")

	thead, tbl, err := table.Locate(doc, a.cfg.TableSelector)
	if err != nil {
		return err
	}
	headerKeys := table.HeaderKeys(thead)
	log.Debug().Int("columns", len(headerKeys)).Msg("header keys parsed")

	var heroes []hero.Hero
	for _, cells := range table.Rows(tbl) {
		// Separator and decoration rows carry a different cell count.
		if len(cells) != len(headerKeys) {
			log.Debug().
				Int("cells", len(cells)).
				Int("columns", len(headerKeys)).
				Msg("skipping row with mismatched arity")
			continue
		}
		h, err := hero.Project(headerKeys, cells)
		if err != nil {
			return fmt.Errorf("project row: %w", err)
		}
		heroes = append(heroes, h)
	}

	result := hero.BuildResult(resolved, heroes)
	if err := writeResult(a.cfg.OutputPath, result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("count", result.Count).Str("out", a.cfg.OutputPath).Msg("wrote output")

	fmt.Printf("Wrote %d heroes to %s\n", result.Count, a.cfg.OutputPath)
	fmt.Printf("Source: %s\n", result.Source)
	return nil
}

// writeResult pretty-prints the envelope as UTF-8 JSON. HTML escaping is off
// so non-ASCII and markup characters survive literally.
func writeResult(path string, result hero.Result) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
