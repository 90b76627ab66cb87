package httpapi

import (
	"database/sql"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/rank"
	"jobsearch-engine/internal/scrape"
)

type Deps struct {
	DB  *sql.DB
	Cfg config.Config

	// Sources in registration order; injected so handler tests can use stubs.
	Searchers []scrape.Searcher

	Scorer rank.Scorer

	// DemoJobs is the last-resort data set when every source comes back empty.
	DemoJobs func() []domain.Job
}
