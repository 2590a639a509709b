// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// BucketURL is the public HTTPS base URL the OpenAir sources are fetched from.
	BucketURL string `yaml:"bucket_url"`

	// Sources lists the OpenAir files making up the primary dataset.
	Sources []Source `yaml:"sources"`

	// External is an optional pre-built GeoJSON dataset merged in last.
	External *External `yaml:"external,omitempty"`

	// DropClasses are removed from every source after conversion.
	DropClasses []string `yaml:"drop_classes,omitempty"`

	Output string `yaml:"output,omitempty"`
}

// Source represents a single OpenAir input file.
type Source struct {
	// Name identifies the source in logs and reports (e.g. "fr_asp").
	Name string `yaml:"name"`

	// Object is the file name within the bucket.
	Object string `yaml:"object"`

	// KeepOnly, when set, retains only features of this class from the source.
	KeepOnly string `yaml:"keep_only,omitempty"`
}

// External represents a secondary GeoJSON dataset with a foreign property
// schema, transformed before merging.
type External struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`

	// KeepOnly retains only features of this class after transformation.
	KeepOnly string `yaml:"keep_only,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("config %s: no sources defined", path)
	}
	for i, src := range cfg.Sources {
		if src.Name == "" || src.Object == "" {
			return nil, fmt.Errorf("config %s: source %d missing name or object", path, i)
		}
	}

	if cfg.Output == "" {
		cfg.Output = "airspace.geojson"
	}

	return &cfg, nil
}
