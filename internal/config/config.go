// Package config loads the generator configuration from a YAML file.
// Feeds, groups and the category taxonomy are explicit configuration
// passed into the pipeline, not process-wide constants.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultLookbackHours = 24
	defaultDocsDir       = "docs"
	defaultProvider      = "anthropic"
)

// Group is a logical partition of feed sources. Prefix is the token
// prepended to article ordinals when building symbolic indices (e.g. "D1").
type Group struct {
	ID     string `yaml:"id"`
	Label  string `yaml:"label"`
	Prefix string `yaml:"prefix"`
}

// Feed is one RSS source assigned to a group.
type Feed struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Group string `yaml:"group"`
}

// WeatherPoint is the location the weather snapshot is fetched for.
type WeatherPoint struct {
	City      string  `yaml:"city"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Market selects which ancillary data points are gathered each run.
type Market struct {
	CryptoIDs    []string      `yaml:"crypto_ids"`
	StockSymbols []string      `yaml:"stock_symbols"`
	Weather      *WeatherPoint `yaml:"weather"`
}

// LLM selects the summarization provider ("anthropic" or "openai").
type LLM struct {
	Provider string `yaml:"provider"`
}

type Config struct {
	Groups        []Group  `yaml:"groups"`
	Feeds         []Feed   `yaml:"feeds"`
	Categories    []string `yaml:"categories"`
	LookbackHours int      `yaml:"lookback_hours"`
	DocsDir       string   `yaml:"docs_dir"`
	Market        Market   `yaml:"market"`
	LLM           LLM      `yaml:"llm"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		LookbackHours: defaultLookbackHours,
		DocsDir:       defaultDocsDir,
		LLM:           LLM{Provider: defaultProvider},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.LookbackHours <= 0 {
		cfg.LookbackHours = defaultLookbackHours
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = defaultDocsDir
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultProvider
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("config: at least one group is required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: at least one category is required")
	}

	seenPrefix := make(map[string]string)
	for _, g := range c.Groups {
		if g.ID == "" || g.Prefix == "" {
			return fmt.Errorf("config: group %q must have id and prefix", g.ID)
		}
		if other, ok := seenPrefix[g.Prefix]; ok {
			return fmt.Errorf("config: groups %q and %q share prefix %q", other, g.ID, g.Prefix)
		}
		seenPrefix[g.Prefix] = g.ID
	}

	for _, f := range c.Feeds {
		if _, ok := c.GroupByID(f.Group); !ok {
			return fmt.Errorf("config: feed %q references unknown group %q", f.Name, f.Group)
		}
	}

	if c.LLM.Provider != "anthropic" && c.LLM.Provider != "openai" {
		return fmt.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}
	return nil
}

// GroupByID looks up a configured group.
func (c *Config) GroupByID(id string) (Group, bool) {
	for _, g := range c.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Window is the article freshness window.
func (c *Config) Window() time.Duration {
	return time.Duration(c.LookbackHours) * time.Hour
}
