package scrape

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"trackr-engine/internal/config"
	"trackr-engine/internal/scrape/render"
	"trackr-engine/internal/store"
)

// RunScrape performs one end-to-end scrape: render the directory page,
// extract the role table, replace the persisted dataset with the new batch.
// Returns the number of records written.
//
// Failures carry their stage (fetch/parse/write). A write failure can leave
// the store partially updated; re-running the scrape is the recovery path.
// Callers must serialize invocations — use Guard.
func RunScrape(ctx context.Context, db *sql.DB, cfg config.Config, r render.Renderer) (int, error) {
	log.Printf("[scrape] fetching %s via %s renderer", cfg.Source.URL, r.Name())
	html, err := r.Render(ctx, cfg.Source.URL)
	if err != nil {
		return 0, stageErr(StageFetch, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, stageErr(StageParse, err)
	}

	records := ExtractRoles(doc, cfg.Source.BaseURL, cfg.Scrape.CategoryKeywords, cfg.Scrape.SentinelCompanies)
	if len(records) == 0 {
		// The fetch worked, the parse worked, and still nothing came out:
		// the table layout almost certainly changed upstream.
		return 0, stageErr(StageParse, ErrNoRecords)
	}
	log.Printf("[scrape] extracted %d records", len(records))

	if err := store.ReplaceAllRoles(ctx, db, records, cfg.Scrape.InsertBatchSize); err != nil {
		return 0, stageErr(StageWrite, err)
	}
	log.Printf("[scrape] dataset replaced count=%d", len(records))

	return len(records), nil
}
