package httpapi

import "net/http"

// NewMux wires handlers to routes; main wraps the result in the middleware
// chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Roles (read side; openness computed per request)
	rh := RolesHandler{DB: d.DB}
	mux.HandleFunc("/roles", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use CfgVal, not a snapshot)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/renderer", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetRendererToken,
	}))

	// Scrape
	sch := ScrapeHandler{
		CfgVal:       d.CfgVal,
		ScrapeStatus: d.ScrapeStatus,
		Hub:          d.Hub,
		RunScrape:    d.RunScrape,
	}
	mux.HandleFunc("/scrape/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sch.Status,
	}))
	mux.HandleFunc("/scrape/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sch.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{DB: d.DB}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
