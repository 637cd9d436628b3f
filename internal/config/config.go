package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Source struct {
		// The JS-rendered directory page the roles table lives on.
		URL string `yaml:"url"`
		// Base for resolving relative hrefs; defaults to source.url.
		BaseURL string `yaml:"base_url"`
	} `yaml:"source"`

	Renderer struct {
		// "remote" posts to a headless-browser render service; "static"
		// plain-GETs the page (only useful against saved fixtures or pages
		// that don't need JS).
		Mode           string  `yaml:"mode"`
		Endpoint       string  `yaml:"endpoint"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		KeyringAccount string  `yaml:"keyring_account"`
		ReqPerSec      float64 `yaml:"req_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"renderer"`

	Scrape struct {
		// Cron spec for background scrapes; empty disables the scheduler.
		Schedule string `yaml:"schedule"`
		// Substrings that mark a short row as a category header. The page
		// format drifts, so these live in config rather than in code.
		CategoryKeywords []string `yaml:"category_keywords"`
		// Company cell values that mean "not a real listing".
		SentinelCompanies []string `yaml:"sentinel_companies"`
		InsertBatchSize   int      `yaml:"insert_batch_size"`
	} `yaml:"scrape"`
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
	ApplyDefaults(&cfg)
	return cfg, nil
}

// DefaultCategoryKeywords is the vocabulary the upstream tracker has used to
// date. Config may override it wholesale.
var DefaultCategoryKeywords = []string{
	"Bulge Bracket", "Elite Boutique", "Middle Market", "Buy-Side",
	"Asset Management", "Big 4", "Consulting", "Trading", "Quant",
	"Pensions", "Insurance", "Accounting", "Audit", "Miscellaneous",
	"Sponsors",
}

// DefaultSentinelCompanies are placeholder rows that pass the cell-count test
// but describe no role.
var DefaultSentinelCompanies = []string{"Sponsors", "Trackr Exclusive"}

// ApplyDefaults fills anything the user file left blank.
func ApplyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 38472
	}
	if cfg.Source.BaseURL == "" {
		cfg.Source.BaseURL = cfg.Source.URL
	}
	if cfg.Renderer.Mode == "" {
		cfg.Renderer.Mode = "remote"
	}
	if cfg.Renderer.TimeoutSeconds <= 0 {
		cfg.Renderer.TimeoutSeconds = 60
	}
	if cfg.Renderer.ReqPerSec <= 0 {
		cfg.Renderer.ReqPerSec = 1.0
	}
	if cfg.Renderer.Burst <= 0 {
		cfg.Renderer.Burst = 2
	}
	if len(cfg.Scrape.CategoryKeywords) == 0 {
		cfg.Scrape.CategoryKeywords = append([]string(nil), DefaultCategoryKeywords...)
	}
	if len(cfg.Scrape.SentinelCompanies) == 0 {
		cfg.Scrape.SentinelCompanies = append([]string(nil), DefaultSentinelCompanies...)
	}
	if cfg.Scrape.InsertBatchSize <= 0 {
		cfg.Scrape.InsertBatchSize = 100
	}
}
