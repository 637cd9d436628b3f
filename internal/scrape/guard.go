package scrape

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sync/singleflight"
)

// Guard serializes full scrape runs. The delete-then-insert replace is not
// protected by any store-level lock, so two interleaved runs would corrupt
// the dataset. Singleflight coalesces concurrent callers inside this process
// (HTTP trigger racing the cron trigger); the file lock keeps a second engine
// process off the same data dir.
type Guard struct {
	sf   singleflight.Group
	lock *flock.Flock
}

func NewGuard(dataDir string) *Guard {
	return &Guard{lock: flock.New(filepath.Join(dataDir, "scrape.lock"))}
}

// Do runs fn at most once at a time. Concurrent in-process callers share the
// running scrape's result; a concurrent run in another process yields
// ErrScrapeInProgress.
func (g *Guard) Do(fn func() (int, error)) (int, error) {
	v, err, _ := g.sf.Do("scrape", func() (any, error) {
		ok, lerr := g.lock.TryLock()
		if lerr != nil {
			return 0, fmt.Errorf("scrape lock: %w", lerr)
		}
		if !ok {
			return 0, ErrScrapeInProgress
		}
		defer func() { _ = g.lock.Unlock() }()
		return fn()
	})
	n, _ := v.(int)
	return n, err
}
