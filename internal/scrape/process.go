package scrape

import (
	"context"
	"database/sql"
	"log"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/rank"
	"jobsearch-engine/internal/store"
)

// Ingest scores each job in place and upserts it. Duplicates on
// (title, company) are silent no-ops and don't count as added. A single
// bad row is logged and skipped, never failing the batch.
func Ingest(ctx context.Context, db *sql.DB, scorer rank.Scorer, jobs []domain.Job) (added int) {
	for i := range jobs {
		jobs[i].MatchScore = scorer.Score(jobs[i].Title, jobs[i].Description)
		if jobs[i].Status == "" {
			jobs[i].Status = domain.StatusFound
		}

		ok, err := store.InsertJobIgnore(ctx, db, jobs[i])
		if err != nil {
			log.Printf("[ingest] insert error: %v title=%q company=%q",
				err, jobs[i].Title, jobs[i].Company)
			continue
		}
		if ok {
			added++
		}
	}
	return added
}
