package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

func TestScoreShortAgedPopularDomain(t *testing.T) {
	// ab.io, 15 years old, 6 popular years, currently active:
	// 5.0 +1.5 (age) +2.0 (length) +0.5 (tld) +1.5 (popularity)
	// +0.5 (brandability) -0.5 (active) → 10 after rounding and clamping.
	created := time.Now().AddDate(-15, 0, -10).Format("2006-01-02")
	rec := Score("ab.io",
		[]int{2004, 2006, 2008, 2010, 2011, 2012},
		models.StatusActive,
		models.WhoisRecord{CreationDate: created})

	if rec.Score != 10 {
		t.Errorf("Score = %d, want 10 (reason: %s)", rec.Score, rec.Reason)
	}
	if rec.EstimatedValue != "$100,000+" {
		t.Errorf("EstimatedValue = %q, want %q", rec.EstimatedValue, "$100,000+")
	}
	for _, want := range []string{
		"Established domain",
		"Ultra-short name (2 chars)",
		"Desirable TLD (io)",
		"Appeared in 6 years of top lists",
		"Currently active",
	} {
		if !strings.Contains(rec.Reason, want) {
			t.Errorf("Reason %q missing %q", rec.Reason, want)
		}
	}
}

func TestScoreAvailableValueOverride(t *testing.T) {
	rec := Score("example.com", nil, models.StatusAvailable, models.WhoisRecord{})

	if rec.EstimatedValue != "$10-$15 (registration cost)" {
		t.Errorf("EstimatedValue = %q, want registration cost", rec.EstimatedValue)
	}
	if !strings.Contains(rec.Reason, "Potentially available for registration") {
		t.Errorf("Reason %q missing availability note", rec.Reason)
	}
}

func TestScoreKeywordBonusCapped(t *testing.T) {
	// "techpaydata" matches tech, pay, and data; bonus caps at 1.5 and the
	// reason lists at most three keywords.
	rec := Score("techpaydata.org", nil, models.StatusParked, models.WhoisRecord{})

	if !strings.Contains(rec.Reason, "High-value keywords: tech, data, pay") {
		t.Errorf("Reason = %q, want three keywords in vocabulary order", rec.Reason)
	}
}

func TestScoreStandardDomain(t *testing.T) {
	// No adjustment fires: mid-length vowelless name, plain TLD, single
	// year, parked status.
	rec := Score("zzzzzzzzzz.org", []int{2000}, models.StatusParked, models.WhoisRecord{})

	if rec.Score != 5 {
		t.Errorf("Score = %d, want 5", rec.Score)
	}
	if rec.Reason != "Standard domain" {
		t.Errorf("Reason = %q, want %q", rec.Reason, "Standard domain")
	}
}

func TestScoreHalfPointRoundsToEven(t *testing.T) {
	// Adjustments are all multiples of 0.5, so exact half-point totals come
	// up constantly; ties break toward the even integer.
	tests := []struct {
		name      string
		years     []int
		wantScore int
		wantValue string
	}{
		// 5.0 base + 1.0 (.com) + 0.5 (2 years) = 6.5 → 6
		{"six and a half down", []int{2000, 2001}, 6, "$5,000-$10,000"},
		// 5.0 base + 1.0 (.com) + 1.5 (5 years) = 7.5 → 8
		{"seven and a half up", []int{2000, 2001, 2002, 2003, 2004}, 8, "$25,000-$50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Score("zzzzzzzzz.com", tt.years, models.StatusParked, models.WhoisRecord{})
			if rec.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (reason: %s)", rec.Score, tt.wantScore, rec.Reason)
			}
			if rec.EstimatedValue != tt.wantValue {
				t.Errorf("EstimatedValue = %q, want %q", rec.EstimatedValue, tt.wantValue)
			}
		})
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	old := time.Now().AddDate(-30, 0, 0).Format("2006-01-02")
	cases := []struct {
		domain string
		years  []int
		status models.Status
		whois  models.WhoisRecord
	}{
		{"a-b-c-1-2-3-4-5-6-7.info", nil, models.StatusActive, models.WhoisRecord{}},
		{"x.com", []int{2000, 2002, 2004, 2006, 2008, 2010}, models.StatusAvailable, models.WhoisRecord{CreationDate: old}},
		{"verylongdomainname-with-99999.net", []int{2004}, models.StatusActive, models.WhoisRecord{}},
		{"", nil, models.StatusError, models.WhoisRecord{}},
		{"pay.com", []int{2000, 2002, 2004, 2006, 2008}, models.StatusForSale, models.WhoisRecord{CreationDate: old}},
		{"site.xyz", nil, models.StatusExpired, models.WhoisRecord{CreationDate: "not a date"}},
	}

	for _, c := range cases {
		rec := Score(c.domain, c.years, c.status, c.whois)
		if rec.Score < 1 || rec.Score > 10 {
			t.Errorf("Score(%q) = %d, outside [1,10]", c.domain, rec.Score)
		}
		if rec.Reason == "" {
			t.Errorf("Score(%q) produced empty reason", c.domain)
		}
		if rec.EstimatedValue == "" {
			t.Errorf("Score(%q) produced empty value estimate", c.domain)
		}
	}
}

func TestEstimateValue(t *testing.T) {
	tests := []struct {
		score  int
		status models.Status
		want   string
	}{
		{1, models.StatusExpired, "$0-$100"},
		{7, models.StatusForSale, "$10,000-$25,000"},
		{10, models.StatusActive, "$100,000+"},
		{9, models.StatusAvailable, "$10-$15 (registration cost)"},
	}

	for _, tt := range tests {
		if got := EstimateValue(tt.score, tt.status); got != tt.want {
			t.Errorf("EstimateValue(%d, %s) = %q, want %q", tt.score, tt.status, got, tt.want)
		}
	}
}
