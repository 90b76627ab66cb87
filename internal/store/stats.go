package store

import (
	"context"
	"database/sql"
	"math"
)

type Stats struct {
	ByStatus         map[string]int `json:"by_status"`
	ByPlatform       map[string]int `json:"by_platform"`
	AvgMatchScore    float64        `json:"avg_match_score"`
	SearchesLastWeek int            `json:"searches_last_week"`
}

func GetStats(ctx context.Context, db *sql.DB) (Stats, error) {
	st := Stats{
		ByStatus:   map[string]int{},
		ByPlatform: map[string]int{},
	}

	byStatus, err := countGrouped(ctx, db,
		`SELECT status, COUNT(*) FROM jobs GROUP BY status;`)
	if err != nil {
		return st, err
	}
	st.ByStatus = byStatus

	byPlatform, err := countGrouped(ctx, db,
		`SELECT source_platform, COUNT(*) FROM jobs GROUP BY source_platform;`)
	if err != nil {
		return st, err
	}
	st.ByPlatform = byPlatform

	var avg sql.NullFloat64
	if err := db.QueryRowContext(ctx,
		`SELECT AVG(match_score) FROM jobs;`).Scan(&avg); err != nil {
		return st, err
	}
	if avg.Valid {
		st.AvgMatchScore = math.Round(avg.Float64*100) / 100
	}

	// search_date is stored as YYYY-MM-DD, so string comparison against
	// date() output is a correct date comparison.
	if err := db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM search_history
WHERE search_date >= date('now', '-7 days');`).Scan(&st.SearchesLastWeek); err != nil {
		return st, err
	}

	return st, nil
}

func countGrouped(ctx context.Context, db *sql.DB, query string) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}
