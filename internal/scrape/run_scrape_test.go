package scrape

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackr-engine/internal/config"
	"trackr-engine/internal/store"
)

// fakeRenderer serves canned markup, or fails, without any network.
type fakeRenderer struct {
	html string
	err  error
}

func (f fakeRenderer) Name() string { return "fake" }

func (f fakeRenderer) Render(ctx context.Context, pageURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.Source.URL = baseURL
	config.ApplyDefaults(&cfg)
	return cfg
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "trackr.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db))
	return db
}

func TestRunScrapeEndToEnd(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	count, err := RunScrape(ctx, db, testConfig(), fakeRenderer{html: syntheticPage})
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	recs, err := store.ListRoles(ctx, db, store.ListRolesOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, "Goldman Sachs", recs[0].CompanyName)
	assert.Equal(t, "Bulge Bracket", recs[0].Category)
}

func TestRunScrapeIdempotentOnSameMarkup(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	cfg := testConfig()

	_, err := RunScrape(ctx, db, cfg, fakeRenderer{html: syntheticPage})
	require.NoError(t, err)
	first, err := store.ListRoles(ctx, db, store.ListRolesOpts{})
	require.NoError(t, err)

	_, err = RunScrape(ctx, db, cfg, fakeRenderer{html: syntheticPage})
	require.NoError(t, err)
	second, err := store.ListRoles(ctx, db, store.ListRolesOpts{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 5, "re-running replaces rather than appends")
}

func TestRunScrapeFetchFailure(t *testing.T) {
	db := testDB(t)
	boom := errors.New("render service unreachable")

	_, err := RunScrape(context.Background(), db, testConfig(), fakeRenderer{err: boom})
	require.Error(t, err)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageFetch, se.Stage)
	assert.ErrorIs(t, err, boom)

	// no write happened
	n, err := store.CountRoles(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRunScrapeNoRecordsSignalsFormatChange(t *testing.T) {
	db := testDB(t)

	// Seed a prior dataset, then scrape a page whose table vanished: the
	// stored data must survive because extraction failing means no write.
	_, err := RunScrape(context.Background(), db, testConfig(), fakeRenderer{html: syntheticPage})
	require.NoError(t, err)

	_, err = RunScrape(context.Background(), db, testConfig(), fakeRenderer{html: "<html><body>redesigned</body></html>"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecords)

	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageParse, se.Stage)

	n, err := store.CountRoles(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestGuardSerializesRuns(t *testing.T) {
	dir := t.TempDir()
	g1 := NewGuard(dir)
	g2 := NewGuard(dir)

	n, err := g1.Do(func() (int, error) {
		// While g1 holds the lock, a second guard (another process in real
		// life) must bounce instead of interleaving a replace-all.
		_, err := g2.Do(func() (int, error) { return 99, nil })
		assert.ErrorIs(t, err, ErrScrapeInProgress)
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	// lock released, next run proceeds
	n, err = g1.Do(func() (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
