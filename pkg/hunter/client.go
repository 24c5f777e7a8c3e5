// Package hunter wraps the Hunter.io v2 API for email verification,
// domain search, and email finding.
package hunter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/acquireiq/enrich-cli/internal/resilience"
)

const defaultBaseURL = "https://api.hunter.io/v2"

// Client defines the Hunter.io operations used by this application.
type Client interface {
	VerifyEmail(ctx context.Context, email string) (*Verification, error)
	DomainSearch(ctx context.Context, domain string, limit int) (*DomainResult, error)
	FindEmail(ctx context.Context, firstName, lastName, domain string) (*FinderResult, error)
}

// Deliverability is the remote verdict on whether an address accepts mail.
type Deliverability int

const (
	DeliverabilityUnknown Deliverability = iota
	Deliverable
	Undeliverable
)

// Verification is the response of the email-verifier endpoint.
type Verification struct {
	Email      string `json:"email"`
	Status     string `json:"status"` // valid, invalid, accept_all, webmail, disposable, unknown, blocked
	Score      int    `json:"score"`  // 0-100
	Regexp     bool   `json:"regexp"`
	Gibberish  bool   `json:"gibberish"`
	Disposable bool   `json:"disposable"`
	Webmail    bool   `json:"webmail"`
	MXRecords  bool   `json:"mx_records"`
	SMTPServer bool   `json:"smtp_server"`
	SMTPCheck  bool   `json:"smtp_check"`
	AcceptAll  bool   `json:"accept_all"`
	Block      bool   `json:"block"`
}

// Deliverability maps the Hunter status string to a three-way verdict.
// Statuses other than valid/invalid (accept_all, webmail, unknown, blocked)
// are ambiguous and report unknown.
func (v *Verification) Deliverability() Deliverability {
	switch v.Status {
	case "valid":
		return Deliverable
	case "invalid", "disposable":
		return Undeliverable
	default:
		return DeliverabilityUnknown
	}
}

// DomainResult is the response of the domain-search endpoint.
type DomainResult struct {
	Domain       string        `json:"domain"`
	Organization string        `json:"organization"`
	Industry     string        `json:"industry"`
	Emails       []DomainEmail `json:"emails"`
}

// DomainEmail is one contact found by domain search.
type DomainEmail struct {
	Value      string `json:"value"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Position   string `json:"position"`
	Confidence int    `json:"confidence"`
}

// FinderResult is the response of the email-finder endpoint.
type FinderResult struct {
	Email     string `json:"email"`
	Score     int    `json:"score"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Domain    string `json:"domain"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default request rate (requests per second).
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		} else {
			c.limiter = nil
		}
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	limiter *rate.Limiter
	http    *http.Client
}

// NewClient creates a Hunter.io API client. By default calls are throttled
// to 1 req/s to stay inside the free-plan quota.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		limiter: rate.NewLimiter(1, 1),
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) VerifyEmail(ctx context.Context, email string) (*Verification, error) {
	params := url.Values{}
	params.Set("email", email)

	var result Verification
	if err := c.get(ctx, "/email-verifier", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs an authenticated GET against path and unmarshals the "data"
// envelope into out. Quota (429) and server errors surface as transient.
func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return eris.Wrap(err, "hunter: rate limit wait")
		}
	}

	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "hunter: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "hunter: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "hunter: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("hunter: unexpected status %d: %s", resp.StatusCode, string(body))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return resilience.NewTransientError(err, resp.StatusCode)
		}
		return err
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return eris.Wrap(err, "hunter: unmarshal envelope")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return eris.Wrap(err, "hunter: unmarshal data")
	}

	return nil
}
