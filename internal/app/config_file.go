package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to the dotted flag names.
type FileConfig struct {
	Source string `yaml:"source" json:"source"`
	Out    string `yaml:"out" json:"out"`

	Table struct {
		Selector string `yaml:"selector" json:"selector"`
	} `yaml:"table" json:"table"`

	HTTP struct {
		UserAgent string        `yaml:"ua" json:"ua"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"http" json:"http"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their defaults. Flags should already have been parsed; this lets
// file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Source == "" && fc.Source != "" {
		cfg.Source = fc.Source
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Out != "" {
		cfg.OutputPath = fc.Out
	}
	if (cfg.TableSelector == "" || cfg.TableSelector == DefaultTableSelector) && fc.Table.Selector != "" {
		cfg.TableSelector = fc.Table.Selector
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.HTTP.Timeout > 0 {
		cfg.Timeout = fc.HTTP.Timeout
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
