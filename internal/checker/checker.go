// Package checker performs the complete check sequence for a single domain:
// HTTP probe, WHOIS lookup, status resolution, and recommendation scoring.
package checker

import (
	"context"
	"time"

	"github.com/hakim/domainscout/internal/models"
	"github.com/hakim/domainscout/internal/scoring"
	"github.com/hakim/domainscout/internal/status"
)

// Prober fetches a domain over HTTP and reports what it saw
type Prober interface {
	Probe(ctx context.Context, domain string) models.ProbeResult
}

// WhoisLookup returns normalized registration data for a domain
type WhoisLookup interface {
	Lookup(domain string) models.WhoisRecord
}

// Checker ties the probe, WHOIS, resolver, and scorer together
type Checker struct {
	prober Prober
	whois  WhoisLookup
	allow  status.AllowList
}

// New creates a Checker with the given collaborators
func New(prober Prober, whoisClient WhoisLookup, allow status.AllowList) *Checker {
	return &Checker{
		prober: prober,
		whois:  whoisClient,
		allow:  allow,
	}
}

// Check runs the full sequence for one domain. The two network calls are
// sequential: the probe first, then WHOIS. WHOIS is looked up for every
// domain because the scorer wants the creation date even when the site is
// clearly alive.
func (c *Checker) Check(ctx context.Context, rec models.DomainRecord) models.CheckResult {
	probeRes := c.prober.Probe(ctx, rec.Domain)
	whoisRec := c.whois.Lookup(rec.Domain)

	verdict := status.Resolve(probeRes, whoisRec, rec.Domain, c.allow)
	recommendation := scoring.Score(rec.Domain, rec.Years, verdict, whoisRec)

	result := models.CheckResult{
		Domain:         rec.Domain,
		YearsPopular:   rec.Years,
		Status:         verdict,
		RedirectURL:    probeRes.RedirectURL,
		PageTitle:      probeRes.PageTitle,
		IsParked:       probeRes.IsParked,
		IsForSale:      probeRes.IsForSale,
		SalePlatform:   probeRes.SalePlatform,
		Error:          probeRes.Error,
		Whois:          whoisRec,
		Recommendation: recommendation,
		CheckedAt:      time.Now().UTC(),
	}

	if probeRes.HasStatus {
		code := probeRes.StatusCode
		result.HTTPStatusCode = &code
	}

	return result
}
