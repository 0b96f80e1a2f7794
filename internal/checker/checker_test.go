package checker

import (
	"context"
	"testing"

	"github.com/hakim/domainscout/internal/models"
	"github.com/hakim/domainscout/internal/status"
)

type stubProber struct {
	result models.ProbeResult
}

func (s stubProber) Probe(context.Context, string) models.ProbeResult {
	return s.result
}

type stubWhois struct {
	record models.WhoisRecord
}

func (s stubWhois) Lookup(string) models.WhoisRecord {
	return s.record
}

func TestCheckCarriesProbeError(t *testing.T) {
	// A probe failure is not a check failure: the error travels on the
	// result and the status falls through to the WHOIS branch.
	c := New(
		stubProber{result: models.ProbeResult{Error: "Timeout"}},
		stubWhois{},
		status.NewAllowList(nil),
	)

	res := c.Check(context.Background(), models.DomainRecord{
		Domain: "gone.com",
		Years:  []int{2000},
	})

	if res.Error != "Timeout" {
		t.Errorf("Error = %q, want %q", res.Error, "Timeout")
	}
	if res.HTTPStatusCode != nil {
		t.Errorf("HTTPStatusCode = %d, want nil when nothing answered", *res.HTTPStatusCode)
	}
	if res.Status != models.StatusAvailable {
		t.Errorf("Status = %q, want %q (no HTTP, no WHOIS signal)", res.Status, models.StatusAvailable)
	}
	if res.Recommendation.EstimatedValue != "$10-$15 (registration cost)" {
		t.Errorf("EstimatedValue = %q, want registration cost", res.Recommendation.EstimatedValue)
	}
}

func TestCheckPopulatesHTTPStatusCode(t *testing.T) {
	c := New(
		stubProber{result: models.ProbeResult{
			StatusCode: 200,
			HasStatus:  true,
			PageTitle:  "Example",
		}},
		stubWhois{record: models.WhoisRecord{Registrar: "Example Registrar"}},
		status.NewAllowList(nil),
	)

	res := c.Check(context.Background(), models.DomainRecord{
		Domain: "alive.com",
		Years:  []int{2000, 2002},
	})

	if res.HTTPStatusCode == nil || *res.HTTPStatusCode != 200 {
		t.Fatalf("HTTPStatusCode = %v, want 200", res.HTTPStatusCode)
	}
	if res.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", res.Status, models.StatusActive)
	}
	if res.PageTitle != "Example" {
		t.Errorf("PageTitle = %q, want probe title carried through", res.PageTitle)
	}
	if res.Whois.Registrar != "Example Registrar" {
		t.Errorf("Whois.Registrar = %q, want lookup record carried through", res.Whois.Registrar)
	}
	if res.CheckedAt.IsZero() {
		t.Error("CheckedAt not set")
	}
}

func TestCheckDistinguishesErrorFromInconclusive(t *testing.T) {
	// A 4xx with no probe error is inconclusive, not errored: the code is
	// recorded and the Error field stays empty.
	c := New(
		stubProber{result: models.ProbeResult{StatusCode: 403, HasStatus: true}},
		stubWhois{record: models.WhoisRecord{Registrar: "R"}},
		status.NewAllowList(nil),
	)

	res := c.Check(context.Background(), models.DomainRecord{Domain: "blocked.com"})

	if res.Error != "" {
		t.Errorf("Error = %q, want empty for a served response", res.Error)
	}
	if res.HTTPStatusCode == nil || *res.HTTPStatusCode != 403 {
		t.Fatalf("HTTPStatusCode = %v, want 403", res.HTTPStatusCode)
	}
}
