// Package content classifies parked and for-sale signals in fetched page
// content. Analysis is a pure function of the extracted title and body text;
// it performs no network access.
package content

import (
	"strings"

	"github.com/hakim/domainscout/internal/models"
)

const (
	// thinPageLimit is the whitespace-stripped length below which a page is
	// treated as "thin" (likely not a real site).
	thinPageLimit = 2000

	// realSiteLimit is the stripped length above which a titled page is
	// assumed legitimate and skipped entirely.
	realSiteLimit = 5000

	// placeholderLimit catches nearly-empty parking pages that carry their
	// only signal in the title.
	placeholderLimit = 150
)

// parkedKeywords are phrases commonly injected by parking/sale landers.
// Matching is plain substring search over the lowercased body text.
var parkedKeywords = []string{
	"buy this domain",
	"this domain is for sale",
	"domain is for sale",
	"domain may be for sale",
	"parked free",
	"parked by",
	"parked domain",
	"domain parking",
	"this webpage was generated",
	"is available for purchase",
	"make an offer",
	"purchase this domain",
	"acquire this domain",
	"domain for sale",
	"this domain name",
	"get this domain",
}

// salePlatforms are marketplace/brokerage brand names that show up on
// for-sale landers. Only consulted on thin pages; legitimate sites mention
// these brands in ads and scripts.
var salePlatforms = []string{
	"godaddy",
	"sedo",
	"afternic",
	"dan.com",
	"hugedomains",
	"namecheap",
	"flippa",
	"squadhelp",
	"brandpa",
	"atom.com",
	"undeveloped",
	"domainagents",
	"buy.it",
	"bodis",
}

// salePhrases are unambiguous listing phrases; any hit marks the domain
// for sale regardless of page size.
var salePhrases = []string{
	"buy this domain",
	"purchase this domain",
	"make an offer on this domain",
	"acquire this domain",
	"this domain is for sale",
	"domain is available for purchase",
	"domain may be for sale",
}

// titleKeywords flag parking pages by title alone
var titleKeywords = []string{"parked", "for sale", "domain", "coming soon"}

// Analyze inspects the probe's extracted title and body text and sets the
// parked / for-sale / sale-platform fields on the result. bodyText must
// already be lowercased. For-sale always implies parked.
//
// A large page whose title is free of domain-sale wording is treated as a
// real site and skipped, so platform names buried in ads on legitimate
// sites do not trigger false positives.
func Analyze(result *models.ProbeResult, bodyText string) {
	strippedLen := len(strings.ReplaceAll(bodyText, " ", ""))
	thinPage := strippedLen < thinPageLimit

	title := strings.ToLower(result.PageTitle)
	if strippedLen > realSiteLimit && title != "" && !containsAny(title, titleKeywords) {
		return
	}

	hits := 0
	for _, kw := range parkedKeywords {
		if strings.Contains(bodyText, kw) {
			hits++
		}
	}
	if hits >= 2 || (hits >= 1 && thinPage) {
		result.IsParked = true
	}

	if thinPage {
		for _, platform := range salePlatforms {
			if strings.Contains(bodyText, platform) {
				result.IsForSale = true
				result.SalePlatform = platform
				break
			}
		}
	}

	for _, phrase := range salePhrases {
		if strings.Contains(bodyText, phrase) {
			result.IsForSale = true
			break
		}
	}

	if result.IsForSale {
		result.IsParked = true
	}

	if strippedLen < placeholderLimit && title != "" && containsAny(title, titleKeywords) {
		result.IsParked = true
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
