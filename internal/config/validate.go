package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}

	if strings.TrimSpace(cfg.Source.URL) == "" {
		errs = append(errs, "source.url is required")
	} else if u, err := url.Parse(cfg.Source.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("source.url is not an absolute URL: %q", cfg.Source.URL))
	}

	switch cfg.Renderer.Mode {
	case "remote":
		if strings.TrimSpace(cfg.Renderer.Endpoint) == "" {
			errs = append(errs, "renderer.endpoint is required when renderer.mode=remote")
		}
	case "static":
	default:
		errs = append(errs, fmt.Sprintf("renderer.mode must be remote or static, got %q", cfg.Renderer.Mode))
	}

	if cfg.Scrape.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Scrape.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("scrape.schedule is not a valid cron spec: %v", err))
		}
	}
	if cfg.Scrape.InsertBatchSize <= 0 {
		errs = append(errs, "scrape.insert_batch_size must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
