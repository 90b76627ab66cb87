package domain

import "time"

// Job is one discovered posting, normalized across sources.
type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	SalaryRange    string    `json:"salary_range"`
	JobURL         string    `json:"job_url"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	SourcePlatform string    `json:"source_platform"`
	MatchScore     int       `json:"match_score"`
	Status         Status    `json:"status"`
	PostedDate     string    `json:"posted_date"` // YYYY-MM-DD
	CreatedAt      time.Time `json:"created_at,omitzero"`
}

// Status tracks a posting through the application pipeline.
type Status string

const (
	StatusFound      Status = "found"
	StatusInterested Status = "interested"
	StatusApplied    Status = "applied"
	StatusInterview  Status = "interview"
	StatusRejected   Status = "rejected"
	StatusOffer      Status = "offer"
)

var allStatuses = []Status{
	StatusFound, StatusInterested, StatusApplied,
	StatusInterview, StatusRejected, StatusOffer,
}

func ValidStatus(s string) bool {
	for _, st := range allStatuses {
		if Status(s) == st {
			return true
		}
	}
	return false
}

// SearchRecord is one audit entry per search invocation. Append-only.
type SearchRecord struct {
	ID            int64   `json:"id"`
	SearchDate    string  `json:"search_date"` // YYYY-MM-DD
	Platform      string  `json:"platform"`
	SearchTerm    string  `json:"search_term"`
	Location      string  `json:"location"`
	ResultsCount  int     `json:"results_count"`
	ExecutionTime float64 `json:"execution_time"` // seconds
}
