// Package whois queries registration data for a domain and normalizes the
// heterogeneous registrar responses into a fixed-shape record.
package whois

import (
	"errors"
	"strings"
	"time"

	whoisclient "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"github.com/sirupsen/logrus"

	"github.com/hakim/domainscout/internal/models"
)

// Client performs WHOIS lookups with a fixed timeout
type Client struct {
	client *whoisclient.Client
}

// NewClient creates a WHOIS client. timeout bounds the full query including
// registry-to-registrar referrals.
func NewClient(timeout time.Duration) *Client {
	c := whoisclient.NewClient()
	c.SetTimeout(timeout)
	return &Client{client: c}
}

// Lookup queries WHOIS for a domain and returns a normalized record.
//
// Lookup never fails the check: an unregistered domain and any transport or
// parse error both degrade to an all-absent record. The distinction the
// status resolver needs (registered vs. not) is carried entirely by which
// fields are populated.
func (c *Client) Lookup(domain string) models.WhoisRecord {
	raw, err := c.client.Whois(domain)
	if err != nil {
		logrus.Debugf("whois query failed for %s: %v", domain, err)
		return models.WhoisRecord{}
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			// Unregistered, so an empty record is the correct answer.
			return models.WhoisRecord{}
		}
		logrus.Debugf("whois parse failed for %s: %v", domain, err)
		return models.WhoisRecord{}
	}

	return Normalize(parsed)
}

// Normalize converts a parsed WHOIS response into a WhoisRecord, applying
// the per-field coercion rules:
//
//   - dates become ISO calendar dates with time-of-day dropped; list-shaped
//     raw values contribute their first entry
//   - registrant prefers organization over personal name
//   - registrant email takes the first entry of a multi-value field
//   - nameservers are lowercased, order preserved, duplicates kept
func Normalize(parsed whoisparser.WhoisInfo) models.WhoisRecord {
	var rec models.WhoisRecord

	if parsed.Registrar != nil {
		rec.Registrar = strings.TrimSpace(parsed.Registrar.Name)
	}

	if parsed.Domain != nil {
		rec.CreationDate = isoDate(parsed.Domain.CreatedDateInTime, parsed.Domain.CreatedDate)
		rec.ExpirationDate = isoDate(parsed.Domain.ExpirationDateInTime, parsed.Domain.ExpirationDate)
		for _, ns := range parsed.Domain.NameServers {
			ns = strings.ToLower(strings.TrimSpace(ns))
			if ns != "" {
				rec.NameServers = append(rec.NameServers, ns)
			}
		}
	}

	if parsed.Registrant != nil {
		if parsed.Registrant.Organization != "" {
			rec.Registrant = parsed.Registrant.Organization
		} else {
			rec.Registrant = parsed.Registrant.Name
		}
		rec.RegistrantEmail = firstEntry(parsed.Registrant.Email)
	}

	return rec
}

// isoDate renders a parsed timestamp as an ISO calendar date, falling back
// to coercing the raw registrar string when the parser could not build one.
func isoDate(t *time.Time, raw string) string {
	if t != nil {
		return t.UTC().Format("2006-01-02")
	}
	return CoerceDate(raw)
}

// dateLayouts covers the registrar formats seen in the wild that the parser
// passes through uninterpreted
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
	"02/01/2006",
}

// CoerceDate converts a raw WHOIS date string to an ISO calendar date.
// List-shaped values (comma-separated) contribute their first entry.
// Returns "" when nothing parseable remains.
func CoerceDate(raw string) string {
	raw = firstEntry(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return ""
}

// firstEntry takes the first element of a comma-separated multi-value field
func firstEntry(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
