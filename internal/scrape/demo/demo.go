// Package demo holds the last-resort job set served when every live
// source comes back empty, so a fresh install still has data to show.
package demo

import (
	"time"

	"jobsearch-engine/internal/domain"
)

const Platform = "demo"

func Jobs() []domain.Job {
	today := time.Now().Format("2006-01-02")
	return []domain.Job{
		{
			Title:          "Senior Business Analyst - Healthcare Platform",
			Company:        "HealthTech Solutions",
			Location:       "Remote, Poland",
			SalaryRange:    "22,000-26,000 PLN",
			Description:    "Looking for experienced BA with healthcare domain knowledge, CRM systems expertise, and requirements analysis skills.",
			SourcePlatform: Platform,
			JobURL:         "https://example.com/job1",
			PostedDate:     today,
		},
		{
			Title:          "Product Manager - Financial Services",
			Company:        "FinanceFirst Bank",
			Location:       "Warsaw, Poland",
			SalaryRange:    "25,000-30,000 PLN",
			Description:    "Senior product manager role for digital banking solutions. Experience with financial services required.",
			SourcePlatform: Platform,
			JobURL:         "https://example.com/job2",
			PostedDate:     today,
		},
	}
}
