package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/store"
)

type JobsHandler struct {
	DB *sql.DB
}

type jobsResponse struct {
	Jobs  []domain.Job `json:"jobs"`
	Total int          `json:"total"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := store.ListJobsOpts{
		Location: q.Get("location"),
		Status:   q.Get("status"),
		Limit:    50,
	}
	if v := q.Get("min_score"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid min_score")
			return
		}
		opts.MinScore = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		opts.Limit = n
	}

	jobs, err := store.ListJobs(r.Context(), h.DB, opts)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	WriteJSON(w, http.StatusOK, jobsResponse{Jobs: jobs, Total: len(jobs)})
}

func (h JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := store.GetJob(r.Context(), h.DB, id)
	if errors.Is(err, domain.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "Job not found")
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

func (h JobsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	err = store.SetStatus(r.Context(), h.DB, id, req.Status)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		WriteError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Job not found")
	case err != nil:
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Status updated",
		})
	}
}
