package render

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"trackr-engine/internal/scrape/util"
)

// Static plain-GETs the page. No JS runs, so this only works against saved
// fixtures or sources that render the table server-side.
type Static struct {
	hc      *resty.Client
	limiter *util.HostLimiter
}

func NewStatic(timeoutSeconds int, limiter *util.HostLimiter) *Static {
	return &Static{
		hc:      resty.New().SetTimeout(time.Duration(timeoutSeconds) * time.Second),
		limiter: limiter,
	}
}

func (s *Static) Name() string { return "static" }

func (s *Static) Render(ctx context.Context, pageURL string) (string, error) {
	if err := s.limiter.Wait(ctx, pageURL); err != nil {
		return "", err
	}

	resp, err := s.hc.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: status %s", pageURL, resp.Status())
	}
	return string(resp.Body()), nil
}
