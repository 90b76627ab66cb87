package store

import (
	"context"
	"database/sql"
	"fmt"

	"jobsearch-engine/internal/domain"
)

// LogSearch appends one audit row per search invocation. Records are never
// mutated or deleted afterwards.
func LogSearch(ctx context.Context, db *sql.DB, rec domain.SearchRecord) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO search_history
  (search_date, platform, search_term, location, results_count, execution_time)
VALUES (?, ?, ?, ?, ?, ?);`,
		rec.SearchDate, rec.Platform, rec.SearchTerm, rec.Location,
		rec.ResultsCount, rec.ExecutionTime,
	)
	if err != nil {
		return fmt.Errorf("log search: %w", err)
	}
	return nil
}
