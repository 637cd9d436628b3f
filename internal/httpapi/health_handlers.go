package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"trackr-engine/internal/store"
)

type HealthHandler struct {
	DB *sql.DB
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := store.CountRoles(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{
		"ok":    true,
		"roles": n,
		"time":  time.Now().UTC().Format(time.RFC3339),
	})
}
