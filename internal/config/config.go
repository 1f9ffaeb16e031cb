package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config lives inside the data dir, so the data dir itself is resolved
// from BOARDSCOUT_DATA_DIR before this file can be read.
type Config struct {
	Polling struct {
		ScanSeconds    int `yaml:"scan_seconds"`
		CommandSeconds int `yaml:"command_seconds"`
	} `yaml:"polling"`

	Filters struct {
		Include          []string `yaml:"include"`
		Exclude          []string `yaml:"exclude"`
		LocationsInclude []string `yaml:"locations_include"`
	} `yaml:"filters"`

	Telegram struct {
		ChunkLimit     int  `yaml:"chunk_limit"`
		DisablePreview bool `yaml:"disable_preview"`
	} `yaml:"telegram"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return Normalize(cfg), nil
}

// Normalize trims and de-duplicates the keyword lists and fills defaults
// for omitted settings.
func Normalize(cfg Config) Config {
	out := cfg

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Filters.Include = trimList(out.Filters.Include)
	out.Filters.Exclude = trimList(out.Filters.Exclude)
	out.Filters.LocationsInclude = trimList(out.Filters.LocationsInclude)

	if out.Polling.ScanSeconds <= 0 {
		out.Polling.ScanSeconds = 1800
	}
	if out.Polling.CommandSeconds <= 0 {
		out.Polling.CommandSeconds = 30
	}
	if out.Telegram.ChunkLimit <= 0 {
		out.Telegram.ChunkLimit = 4000
	}

	return out
}
