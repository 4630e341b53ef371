// Package source acquires the raw HTML document from a URL or a local file
// and parses it.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/unicode"

	"github.com/hyperifyio/herotable/internal/fetch"
)

// ErrNotFound reports a local source path that does not exist.
var ErrNotFound = errors.New("local HTML file not found")

// Load acquires and parses the document named by src, either an HTTP(S) URL
// or a local file path. It returns the parsed document and the resolved
// source identifier recorded in the output: the URL as given, or the
// absolute file path.
func Load(ctx context.Context, client *fetch.Client, src string) (*goquery.Document, string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		body, _, err := client.Get(ctx, src)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", src, err)
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return nil, "", fmt.Errorf("parse html: %w", err)
		}
		return doc, src, nil
	}

	raw, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, src)
		}
		return nil, "", fmt.Errorf("read %s: %w", src, err)
	}
	// Strict UTF-8 first; files with stray bytes are re-decoded lossily with
	// replacement characters rather than failing the run.
	if !utf8.Valid(raw) {
		decoded, derr := unicode.UTF8.NewDecoder().Bytes(raw)
		if derr != nil {
			return nil, "", fmt.Errorf("decode %s: %w", src, derr)
		}
		raw = decoded
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("parse html: %w", err)
	}
	resolved, err := filepath.Abs(src)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", src, err)
	}
	return doc, resolved, nil
}
