// Command herotable extracts a hero attribute statistics table from an HTML
// page (remote URL or local file) and writes it as a normalized JSON document.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/herotable/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		srcFlag     string
		selector    string
		outputPath  string
		userAgent   string
		timeout     time.Duration
		configPath  string
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&srcFlag, "source", "", "URL (https://...) or local HTML file path (required)")
	flag.StringVar(&selector, "table.selector", app.DefaultTableSelector, "CSS selector locating the header section of the target table")
	flag.StringVar(&outputPath, "out", app.DefaultOutputPath, "Path to write the output JSON")
	flag.StringVar(&userAgent, "http.ua", app.DefaultUserAgent, "Custom User-Agent for the page request")
	flag.DurationVar(&timeout, "http.timeout", app.DefaultTimeout, "Timeout for the page request")
	flag.StringVar(&configPath, "config", os.Getenv("HEROTABLE_CONFIG"), "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("herotable %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		Source:        srcFlag,
		TableSelector: selector,
		OutputPath:    outputPath,
		UserAgent:     userAgent,
		Timeout:       timeout,
		Verbose:       verbose,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config file failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if strings.TrimSpace(cfg.Source) == "" {
		fmt.Fprintln(os.Stderr, "missing required -source (URL or local HTML file path)")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
