package justjoinit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobsearch-engine/internal/domain"
)

const (
	Platform       = "justjoinit"
	defaultSiteURL = "https://justjoin.it"
	defaultAPIURL  = "https://api.justjoin.it"
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Client talks to the JustJoin.IT offers API. Offers come back sorted by
// publish date descending; we keep that order. Missing or drifted fields
// degrade to defaults, never to a dropped batch.
type Client struct {
	siteURL string
	apiURL  string
	hc      *http.Client
}

func New(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		siteURL: defaultSiteURL,
		apiURL:  strings.TrimRight(apiURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return Platform }

type offerSalary struct {
	Currency string `json:"currency"`
	From     int64  `json:"from"`
	To       int64  `json:"to"`
}

type offer struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	City            string `json:"city"`
	Remote          bool   `json:"remote"`
	MarkerIcon      string `json:"marker_icon"`
	WorkplaceType   string `json:"workplace_type"`
	PublishedAt     string `json:"published_at"`
	EmploymentTypes []struct {
		Salary *offerSalary `json:"salary"`
	} `json:"employment_types"`
}

type offersResponse struct {
	Data []offer `json:"data"`
}

// Search never fails: any API problem degrades to the fixed sample set.
// Offers whose title doesn't contain the query are suppressed, so the
// result may hold fewer than max entries.
func (c *Client) Search(ctx context.Context, query, location string, max int) []domain.Job {
	jobs, err := c.fetch(ctx, query, location, max)
	if err != nil {
		log.Printf("[%s] api failed, using samples: %v", Platform, err)
		return SampleJobs(max)
	}
	return jobs
}

func (c *Client) fetch(ctx context.Context, query, location string, max int) ([]domain.Job, error) {
	perPage := max
	if perPage > 100 {
		perPage = 100
	}
	params := url.Values{}
	params.Set("page", "1")
	params.Set("sortBy", "published")
	params.Set("orderBy", "DESC")
	params.Set("perPage", strconv.Itoa(perPage))
	if location != "" {
		params.Set("city", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/v2/job-offers?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get offers: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("offers status %d", res.StatusCode)
	}

	var body offersResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	log.Printf("[%s] api returned %d offers", Platform, len(body.Data))

	q := strings.ToLower(strings.TrimSpace(query))
	var jobs []domain.Job
	for i, o := range body.Data {
		if i >= max {
			break
		}
		// Filter on the raw title, so drifted offers that only have a
		// defaulted title can't match a real query.
		if q != "" && !strings.Contains(strings.ToLower(o.Title), q) {
			continue
		}
		jobs = append(jobs, c.extractOffer(o))
	}
	return jobs, nil
}

func (c *Client) extractOffer(o offer) domain.Job {
	title := o.Title
	if title == "" {
		title = "Business Analyst"
	}
	company := o.CompanyName
	if company == "" {
		company = "Tech Company"
	}

	location := o.City
	if location == "" {
		location = "Poland"
	}
	if o.Remote {
		location += ", Remote"
	}

	salary := "Salary negotiable"
	if len(o.EmploymentTypes) > 0 && o.EmploymentTypes[0].Salary != nil {
		s := o.EmploymentTypes[0].Salary
		if s.From > 0 && s.To > 0 {
			cur := s.Currency
			if cur == "" {
				cur = "PLN"
			}
			salary = fmt.Sprintf("%s-%s %s", withCommas(s.From), withCommas(s.To), cur)
		}
	}

	skills := strings.TrimSpace(o.MarkerIcon + " " + o.WorkplaceType)

	posted := time.Now().Format("2006-01-02")
	if len(o.PublishedAt) >= 10 {
		posted = o.PublishedAt[:10]
	}

	return domain.Job{
		Title:          title,
		Company:        company,
		Location:       location,
		SalaryRange:    salary,
		JobURL:         fmt.Sprintf("%s/offers/%s", c.siteURL, o.ID),
		Description:    fmt.Sprintf("%s position at %s. %s", title, company, skills),
		Requirements:   skills,
		SourcePlatform: Platform,
		PostedDate:     posted,
	}
}

// withCommas renders 16000 as "16,000", matching the salary text the rest
// of the system treats as opaque.
func withCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// SampleJobs is the fixed fallback set for this source.
func SampleJobs(max int) []domain.Job {
	samples := []domain.Job{
		{
			Title:          "Business Analyst - Banking Platform",
			Company:        "mBank Digital",
			Location:       "Warsaw, Poland (Hybrid)",
			SalaryRange:    "16,000-22,000 PLN",
			Description:    "Business Analyst role in digital banking team. Work on innovative financial products.",
			Requirements:   "Business Analysis, Banking, Digital Products, Agile",
			SourcePlatform: Platform,
			JobURL:         "https://justjoin.it/offers/business-analyst-banking",
			PostedDate:     time.Now().Format("2006-01-02"),
		},
	}
	if max > 0 && len(samples) > max {
		samples = samples[:max]
	}
	return samples
}
