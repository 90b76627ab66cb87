package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/rank"
	"jobsearch-engine/internal/scrape"
	"jobsearch-engine/internal/store"
)

type SearchHandler struct {
	DB        *sql.DB
	Cfg       config.Config
	Searchers []scrape.Searcher
	Scorer    rank.Scorer
	DemoJobs  func() []domain.Job
}

type searchRequest struct {
	SearchTerm string `json:"search_term"`
	Location   string `json:"location"`
}

type searchResponse struct {
	Success    bool         `json:"success"`
	Jobs       []domain.Job `json:"jobs"`
	TotalFound int          `json:"total_found"`
	NewJobs    int          `json:"new_jobs"`
	Message    string       `json:"message"`
}

// Run drives the whole ingestion path: fan out to the sources, fall back
// to demo data on a fully empty result, score and upsert everything, and
// append one audit row.
func (h SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	term := req.SearchTerm
	if term == "" {
		term = h.Cfg.Search.DefaultTerm
	}
	location := req.Location
	if location == "" {
		location = h.Cfg.Search.DefaultLocation
	}

	start := time.Now()
	log.Printf("[search] term=%q location=%q sources=%d", term, location, len(h.Searchers))

	jobs := scrape.GatherAll(r.Context(), h.Searchers, term, location, h.Cfg.Search.MaxPerSource)
	if len(jobs) == 0 && h.DemoJobs != nil {
		log.Printf("[search] no live results, serving demo data")
		jobs = h.DemoJobs()
	}

	added := scrape.Ingest(r.Context(), h.DB, h.Scorer, jobs)

	rec := domain.SearchRecord{
		SearchDate:    time.Now().Format("2006-01-02"),
		Platform:      "multi-platform",
		SearchTerm:    term,
		Location:      location,
		ResultsCount:  len(jobs),
		ExecutionTime: time.Since(start).Seconds(),
	}
	if err := store.LogSearch(r.Context(), h.DB, rec); err != nil {
		log.Printf("[search] log search failed: %v", err)
	}

	if jobs == nil {
		jobs = []domain.Job{}
	}
	WriteJSON(w, http.StatusOK, searchResponse{
		Success:    true,
		Jobs:       jobs,
		TotalFound: len(jobs),
		NewJobs:    added,
		Message:    fmt.Sprintf("Found %d jobs, %d new", len(jobs), added),
	})
}
