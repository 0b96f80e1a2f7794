package status

import (
	"testing"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

func isoDaysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestResolve(t *testing.T) {
	allow := NewAllowList([]string{"ebay.com"})

	tests := []struct {
		name   string
		domain string
		probe  models.ProbeResult
		whois  models.WhoisRecord
		want   models.Status
	}{
		{
			name:   "allow-list overrides failed probe",
			domain: "ebay.com",
			probe:  models.ProbeResult{Error: "Timeout"},
			want:   models.StatusActive,
		},
		{
			name:   "allow-list overrides parked signal",
			domain: "ebay.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 200, IsParked: true},
			want:   models.StatusActive,
		},
		{
			name:   "redirect wins over parked and for-sale",
			domain: "example.net",
			probe: models.ProbeResult{
				HasStatus:   true,
				StatusCode:  200,
				RedirectURL: "https://www.example.org/",
				IsParked:    true,
				IsForSale:   true,
			},
			want: models.StatusRedirect,
		},
		{
			name:   "for-sale wins over parked",
			domain: "example.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 200, IsParked: true, IsForSale: true},
			want:   models.StatusForSale,
		},
		{
			name:   "parked",
			domain: "example.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 200, IsParked: true},
			want:   models.StatusParked,
		},
		{
			name:   "http 200 is active",
			domain: "example.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 200},
			want:   models.StatusActive,
		},
		{
			name:   "http 301 is active",
			domain: "example.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 301},
			want:   models.StatusActive,
		},
		{
			name:   "http 404 falls through to active",
			domain: "example.com",
			probe:  models.ProbeResult{HasStatus: true, StatusCode: 404},
			want:   models.StatusActive,
		},
		{
			name:   "no http and expiration in past",
			domain: "example.com",
			whois:  models.WhoisRecord{Registrar: "Example Registrar", ExpirationDate: isoDaysFromNow(-30)},
			want:   models.StatusExpired,
		},
		{
			name:   "no http and expiration in future means held",
			domain: "example.com",
			whois:  models.WhoisRecord{Registrar: "Example Registrar", ExpirationDate: isoDaysFromNow(300)},
			want:   models.StatusParked,
		},
		{
			name:   "no http and no whois signal",
			domain: "example.com",
			want:   models.StatusAvailable,
		},
		{
			name:   "no http and whois without expiration",
			domain: "example.com",
			whois:  models.WhoisRecord{Registrar: "Example Registrar"},
			want:   models.StatusExpired,
		},
		{
			name:   "no http and nameservers only",
			domain: "example.com",
			whois:  models.WhoisRecord{NameServers: []string{"ns1.example.com"}},
			want:   models.StatusExpired,
		},
		{
			name:   "unparseable expiration falls through to rule 9",
			domain: "example.com",
			whois:  models.WhoisRecord{ExpirationDate: "sometime next year"},
			want:   models.StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.probe, tt.whois, tt.domain, allow)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	probe := models.ProbeResult{HasStatus: true, StatusCode: 200, IsParked: true}
	whois := models.WhoisRecord{Registrar: "R", ExpirationDate: isoDaysFromNow(100)}
	allow := NewAllowList(nil)

	first := Resolve(probe, whois, "example.com", allow)
	for i := 0; i < 10; i++ {
		if got := Resolve(probe, whois, "example.com", allow); got != first {
			t.Fatalf("verdict changed between identical calls: %q then %q", first, got)
		}
	}
}
