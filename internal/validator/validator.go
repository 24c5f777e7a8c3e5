// Package validator performs deterministic, offline email validation:
// syntax, MX records, disposable-domain membership, a gibberish heuristic,
// and an optional SMTP reachability probe.
package validator

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/acquireiq/enrich-cli/internal/model"
)

// emailRegexp is the gating RFC-shaped format check. Addresses that fail it
// skip all further checks.
var emailRegexp = regexp.MustCompile(`^(?:[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+)@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

var domainRegexp = regexp.MustCompile(`^[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)

// Resolver looks up MX records. *net.Resolver satisfies it.
type Resolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// Weights apportions each check's contribution to local confidence.
// The five weights must sum to 1.0.
type Weights struct {
	Syntax     float64 `yaml:"syntax" mapstructure:"syntax"`
	MX         float64 `yaml:"mx" mapstructure:"mx"`
	Disposable float64 `yaml:"disposable" mapstructure:"disposable"`
	Gibberish  float64 `yaml:"gibberish" mapstructure:"gibberish"`
	SMTP       float64 `yaml:"smtp" mapstructure:"smtp"`
}

// DefaultWeights returns the documented check weight split.
func DefaultWeights() Weights {
	return Weights{
		Syntax:     0.25,
		MX:         0.30,
		Disposable: 0.20,
		Gibberish:  0.15,
		SMTP:       0.10,
	}
}

// Config configures the validator.
type Config struct {
	DNSTimeout  time.Duration // per MX lookup; default 3s
	CacheTTL    time.Duration // MX result cache; default 10m
	SMTPProbe   bool          // best-effort port-25 reachability probe
	SMTPTimeout time.Duration // per probe; default 5s
	Weights     Weights
}

// Option configures optional validator dependencies.
type Option func(*Validator)

// WithResolver overrides the DNS resolver (used by tests).
func WithResolver(r Resolver) Option {
	return func(v *Validator) {
		v.resolver = r
	}
}

// WithProber overrides the SMTP prober (used by tests).
func WithProber(p Prober) Option {
	return func(v *Validator) {
		v.prober = p
	}
}

// WithDisposableDomains extends the built-in disposable-domain set.
func WithDisposableDomains(domains []string) Option {
	return func(v *Validator) {
		for _, d := range domains {
			v.disposable[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
		}
	}
}

// Validator runs the offline check battery. Safe for concurrent use.
type Validator struct {
	cfg        Config
	resolver   Resolver
	prober     Prober
	disposable map[string]struct{}
	webmail    map[string]struct{}
	mxCache    *gocache.Cache
}

// New creates a Validator with the built-in domain sets.
func New(cfg Config, opts ...Option) *Validator {
	if cfg.DNSTimeout <= 0 {
		cfg.DNSTimeout = 3 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.SMTPTimeout <= 0 {
		cfg.SMTPTimeout = 5 * time.Second
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}

	v := &Validator{
		cfg:        cfg,
		resolver:   net.DefaultResolver,
		disposable: make(map[string]struct{}, len(disposableDomains)),
		webmail:    make(map[string]struct{}, len(webmailProviders)),
		mxCache:    gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
	for _, d := range disposableDomains {
		v.disposable[d] = struct{}{}
	}
	for _, d := range webmailProviders {
		v.webmail[d] = struct{}{}
	}
	if cfg.SMTPProbe {
		v.prober = &smtpProber{timeout: cfg.SMTPTimeout}
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate runs all checks against email and derives the local verdict.
// It never returns an error: malformed input yields an invalid outcome.
func (v *Validator) Validate(ctx context.Context, email string) model.ValidationOutcome {
	email = strings.ToLower(strings.TrimSpace(email))
	out := model.ValidationOutcome{Email: email, Status: model.LocalInvalid}

	if !syntaxValid(email) {
		return out // gating: confidence 0, all other checks skipped
	}
	out.Checks.SyntaxValid = true

	domain := email[strings.LastIndex(email, "@")+1:]

	hosts, mxKnown := v.lookupMX(ctx, domain)
	out.Checks.MXRecords = len(hosts) > 0

	_, out.Checks.Disposable = v.disposable[domain]
	_, out.Checks.Webmail = v.webmail[domain]
	out.Checks.Gibberish = looksGibberish(email)

	if v.prober != nil && len(hosts) > 0 {
		reachable, err := v.prober.Probe(ctx, hosts[0])
		if err != nil {
			// Best-effort: a failed probe is unknown, never invalid.
			zap.L().Debug("validator: smtp probe inconclusive",
				zap.String("domain", domain),
				zap.Error(err),
			)
		} else {
			out.Checks.SMTPChecked = true
			out.Checks.SMTPReachable = reachable
		}
	}

	out.LocalConfidence = v.confidence(out.Checks)
	out.Status = deriveStatus(out.Checks, mxKnown)
	return out
}

// confidence is the weighted sum of passed checks, clamped to [0,1].
func (v *Validator) confidence(c model.Checks) float64 {
	w := v.cfg.Weights
	conf := 0.0
	if c.SyntaxValid {
		conf += w.Syntax
	}
	if c.MXRecords {
		conf += w.MX
	}
	if !c.Disposable {
		conf += w.Disposable
	}
	if !c.Gibberish {
		conf += w.Gibberish
	}
	if c.SMTPChecked && c.SMTPReachable {
		conf += w.SMTP
	}
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

// deriveStatus maps check results to a local status. No MX is invalid when
// the lookup answered definitively, unknown when DNS itself was unreachable.
func deriveStatus(c model.Checks, mxKnown bool) model.LocalStatus {
	switch {
	case !c.SyntaxValid:
		return model.LocalInvalid
	case !c.MXRecords && mxKnown:
		return model.LocalInvalid
	case c.Disposable || c.Gibberish:
		return model.LocalRisky
	case !c.MXRecords:
		return model.LocalUnknown
	default:
		return model.LocalValid
	}
}

type mxResult struct {
	hosts []string
	known bool
}

// lookupMX returns the domain's MX hosts in preference order. The second
// return value is false when the lookup failed for reasons other than
// a definitive not-found answer.
func (v *Validator) lookupMX(ctx context.Context, domain string) (hosts []string, known bool) {
	if cached, ok := v.mxCache.Get(domain); ok {
		r := cached.(mxResult)
		return r.hosts, r.known
	}

	lookupCtx, cancel := context.WithTimeout(ctx, v.cfg.DNSTimeout)
	defer cancel()

	records, err := v.resolver.LookupMX(lookupCtx, domain)
	r := mxResult{known: true}
	for _, rec := range records {
		if host := strings.TrimSuffix(rec.Host, "."); host != "" {
			r.hosts = append(r.hosts, host)
		}
	}
	if err != nil {
		var dnsErr *net.DNSError
		if !errors.As(err, &dnsErr) || !dnsErr.IsNotFound {
			r.known = false
		}
	}

	// Don't cache indeterminate lookups; the next lead may succeed.
	if r.known {
		v.mxCache.Set(domain, r, gocache.DefaultExpiration)
	}
	return r.hosts, r.known
}

// syntaxValid applies the regex plus the structural rules the regex alone
// cannot express (length bounds, dot placement in the local part).
func syntaxValid(email string) bool {
	if email == "" || !emailRegexp.MatchString(email) {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if len(local) == 0 || len(local) > 64 {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if len(domain) == 0 || len(domain) > 255 {
		return false
	}
	return domainRegexp.MatchString(domain)
}

// looksGibberish flags local parts with a run of five or more consecutive
// consonants, or letters that are over 85% consonants. Cheap signals for
// auto-generated addresses that leave names like "john.smith" alone.
func looksGibberish(email string) bool {
	local, _, _ := strings.Cut(email, "@")

	var letters, consonants, run, maxRun int
	for _, r := range local {
		if r < 'a' || r > 'z' {
			run = 0
			continue
		}
		letters++
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			run = 0
		default:
			consonants++
			run++
			if run > maxRun {
				maxRun = run
			}
		}
	}
	if letters < 3 {
		return false
	}
	if maxRun >= 5 {
		return true
	}
	return float64(consonants)/float64(letters) > 0.85
}
