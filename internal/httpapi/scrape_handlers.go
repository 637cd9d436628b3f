package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"trackr-engine/internal/config"
	"trackr-engine/internal/events"
	"trackr-engine/internal/scrape"
)

type ScrapeHandler struct {
	CfgVal       *atomic.Value // config.Config
	ScrapeStatus *atomic.Value // scrape.Status
	Hub          *events.Hub
	RunScrape    func(ctx context.Context, cfg config.Config) (count int, err error)
}

func (h ScrapeHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.ScrapeStatus.Load().(scrape.Status)
	writeJSON(w, st)
}

// Run kicks off a scrape asynchronously. The run itself is serialized by the
// scrape guard; this endpoint only refuses when a run is already visible in
// the status, so the UI gets a friendly answer instead of a coalesced result.
func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.ScrapeStatus.Load().(scrape.Status)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.ScrapeStatus.Store(scrape.Status{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	reqID := RequestIDFrom(r.Context())

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		h.Hub.Publish(events.ScrapeStarted(reqID, "http"))

		count, err := h.RunScrape(context.Background(), cfg)

		now := time.Now().Format(time.RFC3339)
		next := h.ScrapeStatus.Load().(scrape.Status)
		next.Running = false
		next.LastRunAt = now
		next.LastCount = count
		switch {
		case err == nil:
			next.LastError = ""
			next.LastOkAt = now
			h.Hub.Publish(events.ScrapeFinished(reqID, count, ""))
			h.Hub.Publish(events.DatasetReplaced(reqID, count))
		case errors.Is(err, scrape.ErrScrapeInProgress):
			// another invocation holds the lock; nothing was replaced
			next.LastError = ""
			h.Hub.Publish(events.ScrapeFinished(reqID, 0, err.Error()))
		default:
			next.LastError = err.Error()
			h.Hub.Publish(events.ScrapeFinished(reqID, 0, err.Error()))
		}
		h.ScrapeStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
