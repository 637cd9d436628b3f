package scrape

import "errors"

// Pipeline stages, attached to failures so callers can tell a flaky network
// from a page whose structure changed underneath us.
const (
	StageFetch = "fetch"
	StageParse = "parse"
	StageWrite = "write"
)

// ErrNoRecords means the fetch succeeded but extraction found nothing —
// the usual signal that the upstream table layout changed.
var ErrNoRecords = errors.New("no records extracted")

// ErrScrapeInProgress is returned when another scrape holds the lock.
var ErrScrapeInProgress = errors.New("scrape already in progress")

// StageError tags a scrape failure with the stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
