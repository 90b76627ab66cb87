package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SourceConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"` // override for tests/mirrors; empty = production URL
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Search struct {
		DefaultTerm     string `yaml:"default_term"`
		DefaultLocation string `yaml:"default_location"`
		MaxPerSource    int    `yaml:"max_per_source"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
	} `yaml:"search"`

	Scoring struct {
		Skills     []string `yaml:"skills"`
		BonusTerms []string `yaml:"bonus_terms"`
	} `yaml:"scoring"`

	Sources struct {
		NoFluffJobs SourceConfig `yaml:"nofluffjobs"`
		JustJoinIT  SourceConfig `yaml:"justjoinit"`
	} `yaml:"sources"`
}

// Default returns the built-in configuration. The skill vocabulary and bonus
// terms are deliberate literals; scoring semantics depend on them.
func Default() Config {
	var cfg Config
	cfg.App.Port = 5000
	cfg.App.DataDir = "."

	cfg.Search.DefaultTerm = "Senior Business Analyst"
	cfg.Search.DefaultLocation = "Poland"
	cfg.Search.MaxPerSource = 10
	cfg.Search.TimeoutSeconds = 10

	cfg.Scoring.Skills = []string{
		"business analyst", "requirements", "crm", "sql", "senior",
		"stakeholder", "process", "analysis", "healthcare", "remote",
		"product manager", "data", "business intelligence",
	}
	cfg.Scoring.BonusTerms = []string{
		"senior", "business analyst", "product manager", "remote",
	}

	cfg.Sources.NoFluffJobs.Enabled = true
	cfg.Sources.JustJoinIT.Enabled = true
	return cfg
}

// Load reads path over the defaults, so a partial file is fine.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
