package validator

import (
	"context"
	"time"

	"github.com/wneessen/go-mail"
)

// Prober checks whether a mail host accepts SMTP connections.
type Prober interface {
	// Probe dials host on port 25. A returned error means the probe was
	// inconclusive, not that the host is down.
	Probe(ctx context.Context, host string) (bool, error)
}

// smtpProber dials the MX host with an opportunistic-TLS SMTP handshake.
type smtpProber struct {
	timeout time.Duration
}

func (p *smtpProber) Probe(ctx context.Context, host string) (bool, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(25),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(p.timeout),
	)
	if err != nil {
		return false, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := client.DialWithContext(dialCtx); err != nil {
		return false, err
	}
	_ = client.Close()
	return true, nil
}
