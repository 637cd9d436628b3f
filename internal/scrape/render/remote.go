package render

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"trackr-engine/internal/scrape/util"
)

// Remote drives a browserless-style render service: POST the target URL to
// the /content endpoint, get back the DOM after client-side scripts ran.
type Remote struct {
	endpoint string
	token    string
	hc       *resty.Client
	limiter  *util.HostLimiter
}

type contentRequest struct {
	URL string `json:"url"`
}

func NewRemote(endpoint, token string, timeoutSeconds int, limiter *util.HostLimiter) *Remote {
	hc := resty.New().
		SetTimeout(time.Duration(timeoutSeconds) * time.Second).
		SetHeader("Accept", "text/html")
	return &Remote{
		endpoint: endpoint,
		token:    token,
		hc:       hc,
		limiter:  limiter,
	}
}

func (r *Remote) Name() string { return "remote" }

func (r *Remote) Render(ctx context.Context, pageURL string) (string, error) {
	if err := r.limiter.Wait(ctx, r.endpoint); err != nil {
		return "", err
	}

	resp, err := r.hc.R().
		SetContext(ctx).
		SetAuthToken(r.token).
		SetBody(contentRequest{URL: pageURL}).
		Post(r.endpoint)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("render %s: service returned %s", pageURL, resp.Status())
	}

	return string(resp.Body()), nil
}
