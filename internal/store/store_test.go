package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"jobsearch-engine/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	if err := Migrate(d.Pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return d
}

func sampleJob(title, company string, score int) domain.Job {
	return domain.Job{
		Title:          title,
		Company:        company,
		Location:       "Warsaw, Poland",
		SalaryRange:    "15,000-25,000 PLN",
		JobURL:         "https://example.com/job",
		Description:    "desc",
		Requirements:   "reqs",
		SourcePlatform: "nofluffjobs",
		MatchScore:     score,
		PostedDate:     "2026-08-20",
	}
}

func TestInsertJobIgnoreDedup(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	added, err := InsertJobIgnore(ctx, d.Pool, sampleJob("BA", "Acme", 40))
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if !added {
		t.Error("first insert should report a new row")
	}

	// Same (title, company) with different everything else: silent no-op.
	dup := sampleJob("BA", "Acme", 90)
	dup.Location = "Remote"
	added, err = InsertJobIgnore(ctx, d.Pool, dup)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if added {
		t.Error("duplicate insert should report not-new")
	}

	var count int
	if err := d.Pool.QueryRow(`SELECT COUNT(*) FROM jobs;`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 row, got %d", count)
	}

	// Existing row must be untouched, score included.
	jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if jobs[0].MatchScore != 40 {
		t.Errorf("duplicate insert overwrote match_score: got %d", jobs[0].MatchScore)
	}
	if jobs[0].Location != "Warsaw, Poland" {
		t.Errorf("duplicate insert overwrote location: got %q", jobs[0].Location)
	}
}

func TestInsertDefaultsStatusFound(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	if _, err := InsertJobIgnore(ctx, d.Pool, sampleJob("BA", "Acme", 10)); err != nil {
		t.Fatal(err)
	}
	jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if jobs[0].Status != domain.StatusFound {
		t.Errorf("expected status %q, got %q", domain.StatusFound, jobs[0].Status)
	}
	if jobs[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set on insert")
	}
}

func TestListJobsFiltersAndOrder(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	seed := []struct {
		title, company, location string
		score                    int
		status                   string
		createdAt                string
	}{
		{"BA Senior", "A", "Warsaw, Poland", 80, "applied", "2026-08-01 10:00:00"},
		{"BA Mid", "B", "Kraków, Poland", 80, "applied", "2026-08-02 10:00:00"},
		{"PM", "C", "Warsaw, Poland", 60, "found", "2026-08-03 10:00:00"},
		{"Dev", "D", "Berlin, Germany", 30, "applied", "2026-08-04 10:00:00"},
	}
	for _, s := range seed {
		_, err := d.Pool.Exec(`
INSERT INTO jobs (title, company, location, match_score, status, created_at)
VALUES (?, ?, ?, ?, ?, ?);`,
			s.title, s.company, s.location, s.score, s.status, s.createdAt)
		if err != nil {
			t.Fatal(err)
		}
	}

	t.Run("min score and status", func(t *testing.T) {
		jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{MinScore: 50, Status: "applied", Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(jobs))
		}
		for _, j := range jobs {
			if j.MatchScore < 50 || j.Status != "applied" {
				t.Errorf("filter leak: score=%d status=%s", j.MatchScore, j.Status)
			}
		}
		// Equal scores: newer created_at first.
		if jobs[0].Title != "BA Mid" || jobs[1].Title != "BA Senior" {
			t.Errorf("tie-break order wrong: %q then %q", jobs[0].Title, jobs[1].Title)
		}
	})

	t.Run("location substring", func(t *testing.T) {
		jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{Location: "Warsaw"})
		if err != nil {
			t.Fatal(err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected 2 Warsaw jobs, got %d", len(jobs))
		}
	})

	t.Run("score descending", func(t *testing.T) {
		jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{})
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(jobs); i++ {
			if jobs[i].MatchScore > jobs[i-1].MatchScore {
				t.Fatalf("not sorted by score desc at %d", i)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		jobs, err := ListJobs(ctx, d.Pool, ListJobsOpts{Limit: 2})
		if err != nil {
			t.Fatal(err)
		}
		if len(jobs) != 2 {
			t.Fatalf("expected limit 2, got %d", len(jobs))
		}
	})
}

func TestGetJob(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	if _, err := InsertJobIgnore(ctx, d.Pool, sampleJob("BA", "Acme", 42)); err != nil {
		t.Fatal(err)
	}

	j, err := GetJob(ctx, d.Pool, 1)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if j.Title != "BA" || j.Company != "Acme" || j.MatchScore != 42 {
		t.Errorf("unexpected job: %+v", j)
	}

	_, err = GetJob(ctx, d.Pool, 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	if _, err := InsertJobIgnore(ctx, d.Pool, sampleJob("BA", "Acme", 42)); err != nil {
		t.Fatal(err)
	}

	if err := SetStatus(ctx, d.Pool, 1, "applied"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	j, err := GetJob(ctx, d.Pool, 1)
	if err != nil {
		t.Fatal(err)
	}
	if j.Status != domain.StatusApplied {
		t.Errorf("expected applied, got %q", j.Status)
	}
	if j.MatchScore != 42 {
		t.Errorf("status update touched match_score: %d", j.MatchScore)
	}

	if err := SetStatus(ctx, d.Pool, 1, "bogus"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := SetStatus(ctx, d.Pool, 999, "applied"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// Invalid status wins over unknown id.
	if err := SetStatus(ctx, d.Pool, 999, "bogus"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus regardless of id, got %v", err)
	}
}

func TestLogSearchAndStats(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	for _, s := range []struct {
		title, company, platform string
		score                    int
	}{
		{"BA", "A", "nofluffjobs", 80},
		{"PM", "B", "nofluffjobs", 60},
		{"Dev", "C", "justjoinit", 40},
	} {
		j := sampleJob(s.title, s.company, s.score)
		j.SourcePlatform = s.platform
		if _, err := InsertJobIgnore(ctx, d.Pool, j); err != nil {
			t.Fatal(err)
		}
	}
	if err := SetStatus(ctx, d.Pool, 1, "applied"); err != nil {
		t.Fatal(err)
	}

	today := time.Now().Format("2006-01-02")
	recent := domain.SearchRecord{
		SearchDate: today, Platform: "multi-platform",
		SearchTerm: "BA", Location: "Poland",
		ResultsCount: 3, ExecutionTime: 1.25,
	}
	if err := LogSearch(ctx, d.Pool, recent); err != nil {
		t.Fatalf("LogSearch: %v", err)
	}
	old := recent
	old.SearchDate = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	if err := LogSearch(ctx, d.Pool, old); err != nil {
		t.Fatal(err)
	}

	st, err := GetStats(ctx, d.Pool)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.ByStatus["applied"] != 1 || st.ByStatus["found"] != 2 {
		t.Errorf("by_status wrong: %v", st.ByStatus)
	}
	if st.ByPlatform["nofluffjobs"] != 2 || st.ByPlatform["justjoinit"] != 1 {
		t.Errorf("by_platform wrong: %v", st.ByPlatform)
	}
	if st.AvgMatchScore != 60 {
		t.Errorf("avg_match_score: expected 60, got %v", st.AvgMatchScore)
	}
	if st.SearchesLastWeek != 1 {
		t.Errorf("searches_last_week: expected 1, got %d", st.SearchesLastWeek)
	}
}

func TestStatsEmptyDB(t *testing.T) {
	d := newTestDB(t)

	st, err := GetStats(context.Background(), d.Pool)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if st.AvgMatchScore != 0 {
		t.Errorf("expected avg 0 on empty db, got %v", st.AvgMatchScore)
	}
	if len(st.ByStatus) != 0 || len(st.ByPlatform) != 0 {
		t.Errorf("expected empty maps, got %v %v", st.ByStatus, st.ByPlatform)
	}
}
