// Package status resolves a domain's lifecycle state from its probe result
// and registration data.
package status

import (
	"time"

	"github.com/hakim/domainscout/internal/models"
)

// AllowList is the set of known-active domains that block automated probes
// (geo-restrictions, bot protection). Members are always classified active
// regardless of what the probe saw.
type AllowList map[string]bool

// NewAllowList builds an AllowList from domain names
func NewAllowList(domains []string) AllowList {
	list := make(AllowList, len(domains))
	for _, d := range domains {
		list[d] = true
	}
	return list
}

// Resolve determines the lifecycle state for a domain.
//
// Rules are evaluated in order, first match wins:
//
//  1. allow-listed domain            → active
//  2. cross-domain redirect          → redirect
//  3. for-sale signal                → for_sale
//  4. parked signal                  → parked
//  5. HTTP 2xx/3xx                   → active
//  6. no HTTP, expiration in past    → expired
//  7. no HTTP, expiration in future  → parked (registered but held)
//  8. no HTTP, no WHOIS signal       → available
//  9. no HTTP, WHOIS but no usable expiration → expired
//  10. fallback                      → active
//
// An unparseable expiration date counts as "no usable expiration" and falls
// through to rules 8/9.
func Resolve(probe models.ProbeResult, whois models.WhoisRecord, domain string, allowList AllowList) models.Status {
	if allowList[domain] {
		return models.StatusActive
	}

	if probe.RedirectURL != "" {
		return models.StatusRedirect
	}

	if probe.IsForSale {
		return models.StatusForSale
	}

	if probe.IsParked {
		return models.StatusParked
	}

	if probe.HasStatus && probe.StatusCode >= 200 && probe.StatusCode < 400 {
		return models.StatusActive
	}

	if !probe.HasStatus {
		if exp, ok := parseExpiration(whois.ExpirationDate); ok {
			if exp.Before(time.Now()) {
				return models.StatusExpired
			}
			return models.StatusParked
		}

		if whois.Empty() {
			return models.StatusAvailable
		}
		return models.StatusExpired
	}

	return models.StatusActive
}

// parseExpiration parses a normalized ISO expiration date. ok is false for
// absent or unparseable values.
func parseExpiration(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
