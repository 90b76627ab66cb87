package scrape

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"jobsearch-engine/internal/domain"
)

// Searcher is one job site integration. Search never returns an error:
// network or parse failures degrade to source-tagged sample data inside
// the client.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query, location string, max int) []domain.Job
}

// GatherAll fans out to every registered source and concatenates their
// results in registration order. Each source is independent; a panicking
// or empty source contributes nothing and never blocks the others.
func GatherAll(ctx context.Context, searchers []Searcher, query, location string, maxPer int) []domain.Job {
	results := make([][]domain.Job, len(searchers))

	var g errgroup.Group
	for i, s := range searchers {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("[%s] source failed: %v", s.Name(), rec)
				}
			}()
			jobs := s.Search(ctx, query, location, maxPer)
			log.Printf("[%s] got %d jobs", s.Name(), len(jobs))
			results[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Job
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
