package httpapi

import (
	"database/sql"
	"net/http"

	"jobsearch-engine/internal/store"
)

type StatsHandler struct {
	DB *sql.DB
}

func (h StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := store.GetStats(r.Context(), h.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, st)
}
