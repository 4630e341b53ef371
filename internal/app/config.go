package app

import "time"

// Defaults shared by flag parsing and file-config overlay.
const (
	// DefaultTableSelector targets the known hero-attribute table layout on
	// the wiki page; override it when the page structure changes.
	DefaultTableSelector = "#mw-content-text > div > div:nth-of-type(2) > table > thead"
	DefaultOutputPath    = "docs/data/heroes.json"
	// Some wiki sites are picky about anonymous clients; an identifying UA helps.
	DefaultUserAgent = "Mozilla/5.0 (compatible; herotable/1.0; +https://github.com/hyperifyio/herotable)"
	DefaultTimeout   = 30 * time.Second
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	// Source is an HTTP(S) URL or a local HTML file path.
	Source string
	// TableSelector is the CSS selector locating the header section of the
	// target table.
	TableSelector string
	// OutputPath is where the JSON document is written; parent directories
	// are created when missing.
	OutputPath string

	// HTTP
	UserAgent string
	Timeout   time.Duration

	Verbose bool
}
