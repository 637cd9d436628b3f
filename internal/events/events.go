package events

import (
	"encoding/json"
	"time"
)

// Event types published over SSE.
const (
	TypeScrapeStarted   = "scrape_started"
	TypeScrapeFinished  = "scrape_finished"
	TypeDatasetReplaced = "dataset_replaced"
)

type Event struct {
	Type      string          `json:"type"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make serializes an event for the hub. Marshal failures degrade to a
// data-less event rather than dropping the signal.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// ScrapeStarted announces a run kicked off by trigger ("http" or "cron").
func ScrapeStarted(reqID, trigger string) string {
	return Make(reqID, TypeScrapeStarted, map[string]any{"trigger": trigger})
}

// ScrapeFinished carries the outcome; errMsg is "" on success.
func ScrapeFinished(reqID string, count int, errMsg string) string {
	return Make(reqID, TypeScrapeFinished, map[string]any{"count": count, "error": errMsg})
}

// DatasetReplaced fires after the store swap so read-side consumers refetch.
func DatasetReplaced(reqID string, count int) string {
	return Make(reqID, TypeDatasetReplaced, map[string]any{"count": count})
}
