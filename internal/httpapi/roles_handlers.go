package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"trackr-engine/internal/domain"
	"trackr-engine/internal/store"
)

type RolesHandler struct {
	DB *sql.DB

	// Now is injectable so openness is testable; defaults to time.Now.
	Now func() time.Time
}

// roleView is a RoleRecord plus the derived openness flag. is_open is never
// persisted; it's computed against today on every read.
type roleView struct {
	domain.RoleRecord
	IsOpen bool `json:"is_open"`
}

// List serves GET /roles. Query params: category (exact match),
// sort=opens|company (opens is descending, absent dates last), open=true to
// keep only roles whose application window contains today.
func (h RolesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	recs, err := store.ListRoles(r.Context(), h.DB, store.ListRolesOpts{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	today := now()

	openOnly := q.Get("open") == "true"

	views := make([]roleView, 0, len(recs))
	for _, rec := range recs {
		isOpen := rec.Open(today)
		if openOnly && !isOpen {
			continue
		}
		views = append(views, roleView{RoleRecord: rec, IsOpen: isOpen})
	}

	writeJSON(w, views)
}
