package util

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter rate-limits outbound requests per hostname so repeated render
// calls (and any retries the caller layers on) stay polite to the tracker and
// to the render service.
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

// Wait blocks until the host named by raw's URL may be contacted. URLs that
// don't parse share a single fallback bucket.
func (hl *HostLimiter) Wait(ctx context.Context, raw string) error {
	host := "_"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}

	hl.mu.Lock()
	lim, ok := hl.m[host]
	if !ok {
		lim = rate.NewLimiter(hl.r, hl.b)
		hl.m[host] = lim
	}
	hl.mu.Unlock()

	return lim.Wait(ctx)
}
