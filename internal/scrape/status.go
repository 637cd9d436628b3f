package scrape

// Status is the last-known state of the scrape pipeline, held in an
// atomic.Value and served by the HTTP layer.
type Status struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	Running   bool   `json:"running"`
}
