package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobsearch-engine/internal/domain"
)

type ListJobsOpts struct {
	MinScore int
	Location string // substring match, empty = all
	Status   string // exact match, empty = all
	Limit    int    // <=0 falls back to 50
}

const jobColumns = `id, title, company, location, salary_range, job_url,
description, requirements, source_platform, match_score, status,
posted_date, created_at`

// InsertJobIgnore inserts a job unless one with the same (title, company)
// already exists; the existing row, its status and score included, is left
// untouched. Reports whether a new row was created, via the statement's own
// RowsAffected rather than a connection-global change counter.
func InsertJobIgnore(ctx context.Context, db *sql.DB, j domain.Job) (added bool, err error) {
	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs
  (title, company, location, salary_range, job_url, description,
   requirements, source_platform, match_score, posted_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		j.Title, j.Company, j.Location, j.SalaryRange, j.JobURL,
		j.Description, j.Requirements, j.SourcePlatform, j.MatchScore,
		j.PostedDate,
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert job rows affected: %w", err)
	}
	return n > 0, nil
}

func ListJobs(ctx context.Context, db *sql.DB, opts ListJobsOpts) ([]domain.Job, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE match_score >= ?`
	args := []any{opts.MinScore}

	if opts.Location != "" {
		query += ` AND location LIKE ?`
		args = append(args, "%"+opts.Location+"%")
	}
	if opts.Status != "" {
		query += ` AND status = ?`
		args = append(args, opts.Status)
	}

	query += ` ORDER BY match_score DESC, created_at DESC LIMIT ?;`
	args = append(args, opts.Limit)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func GetJob(ctx context.Context, db *sql.DB, id int64) (domain.Job, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ?;`, id)

	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Job{}, domain.ErrNotFound
	}
	return j, err
}

// SetStatus moves a job through the application pipeline. Only the status
// column changes.
func SetStatus(ctx context.Context, db *sql.DB, id int64, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	res, err := db.ExecContext(ctx,
		`UPDATE jobs SET status = ? WHERE id = ?;`, status, id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update status rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanJob(row scannable) (domain.Job, error) {
	var j domain.Job
	var status, createdAt string
	if err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.SalaryRange,
		&j.JobURL, &j.Description, &j.Requirements, &j.SourcePlatform,
		&j.MatchScore, &status, &j.PostedDate, &createdAt,
	); err != nil {
		return domain.Job{}, err
	}
	j.Status = domain.Status(status)
	j.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	return j, nil
}
