package httpapi

import "net/http"

// NewMux wires the API surface. Method-scoped patterns let the mux handle
// 405s; everything else is plain handlers over the injected deps.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", HealthHandler{}.Health)

	sh := SearchHandler{
		DB: d.DB, Cfg: d.Cfg,
		Searchers: d.Searchers, Scorer: d.Scorer, DemoJobs: d.DemoJobs,
	}
	mux.HandleFunc("POST /api/jobs/search", sh.Run)

	jh := JobsHandler{DB: d.DB}
	mux.HandleFunc("GET /api/jobs", jh.List)
	mux.HandleFunc("GET /api/jobs/{id}", jh.Get)
	mux.HandleFunc("PUT /api/jobs/{id}/status", jh.SetStatus)

	mux.HandleFunc("GET /api/stats", StatsHandler{DB: d.DB}.Get)

	return mux
}
