// Package render fetches fully rendered page markup. The tracker table is
// drawn client-side, so the default implementation delegates JS execution to
// a remote headless-browser service and treats the returned HTML as opaque
// input.
package render

import (
	"context"

	"trackr-engine/internal/config"
	"trackr-engine/internal/scrape/util"
	"trackr-engine/internal/secrets"
)

// Renderer returns fully rendered HTML for a URL, or fails the scrape
// attempt. Implementations never parse the page.
type Renderer interface {
	Name() string
	Render(ctx context.Context, pageURL string) (string, error)
}

// NewFromConfig builds the configured renderer. Remote mode resolves its API
// token from the OS keyring (env fallback) at construction time so a missing
// credential surfaces at startup, not mid-scrape.
func NewFromConfig(cfg config.Config) (Renderer, error) {
	limiter := util.NewHostLimiter(cfg.Renderer.ReqPerSec, cfg.Renderer.Burst)

	switch cfg.Renderer.Mode {
	case "static":
		return NewStatic(cfg.Renderer.TimeoutSeconds, limiter), nil
	default:
		token, err := secrets.GetRendererToken(secrets.RendererKeyringAccount(cfg))
		if err != nil {
			return nil, err
		}
		return NewRemote(cfg.Renderer.Endpoint, token, cfg.Renderer.TimeoutSeconds, limiter), nil
	}
}
