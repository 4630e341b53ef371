package main

import (
	"os"
	"path/filepath"
	"testing"

	apppkg "github.com/hyperifyio/herotable/internal/app"
)

// Smoke test: ensure main.run extracts a minimal local table end to end.
func TestRun_LocalFile_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	out := filepath.Join(dir, "heroes.json")
	page := `<html><body><div id="content">
	<table>
	  <thead><tr><th>HERO</th><th>STR</th></tr></thead>
	  <tbody><tr><td><a href="/axe">Axe</a></td><td>23</td></tr></tbody>
	</table>
	</div></body></html>`
	if err := os.WriteFile(in, []byte(page), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := apppkg.Config{
		Source:        in,
		TableSelector: "#content > table > thead",
		OutputPath:    out,
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || len(b) == 0 {
		t.Fatalf("expected output file, err=%v", err)
	}
}

// Errors from acquisition surface from run() so main can apply its exit policy.
func TestRun_MissingSource_Error(t *testing.T) {
	dir := t.TempDir()
	cfg := apppkg.Config{
		Source:        filepath.Join(dir, "missing.html"),
		TableSelector: apppkg.DefaultTableSelector,
		OutputPath:    filepath.Join(dir, "heroes.json"),
	}
	if err := run(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
