// Package scoring computes the acquisition-worthiness recommendation for a
// domain from its name shape, age, historical popularity, and resolved
// status.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

const (
	baseScore = 5.0
	minScore  = 1
	maxScore  = 10

	daysPerYear = 365.25
)

// highValueKeywords are name fragments that raise resale value
// (tech / finance / commerce / lifestyle vocabulary)
var highValueKeywords = []string{
	"tech", "ai", "cloud", "data", "cyber", "net", "web", "app", "code",
	"dev", "digital", "smart", "auto", "pay", "fin", "bank", "cash", "money",
	"crypto", "trade", "invest", "fund", "loan", "credit", "insurance",
	"social", "chat", "meet", "link", "share", "connect", "hub", "live",
	"stream", "video", "media", "news", "health", "med", "care", "fit",
	"shop", "store", "buy", "deal", "market", "sale",
	"game", "play", "bet", "win", "sport",
	"travel", "trip", "fly", "hotel", "book",
	"food", "eat", "cook", "recipe",
	"learn", "edu", "study", "course", "tutor",
	"job", "hire", "work", "career", "talent",
	"home", "house", "real", "rent", "property",
}

// valueRanges maps a final score to a rough dollar estimate
var valueRanges = map[int]string{
	1:  "$0-$100",
	2:  "$100-$500",
	3:  "$500-$1,000",
	4:  "$1,000-$2,500",
	5:  "$2,500-$5,000",
	6:  "$5,000-$10,000",
	7:  "$10,000-$25,000",
	8:  "$25,000-$50,000",
	9:  "$50,000-$100,000",
	10: "$100,000+",
}

// availableValue overrides the range table for unregistered domains
const availableValue = "$10-$15 (registration cost)"

// Score rates a domain 1-10 and explains the rating.
//
// Starting from a base of 5.0, adjustments are applied in a fixed order
// (age, name length, TLD, historical popularity, keywords, brandability,
// status); each adjustment that fires appends its reason. The float total
// is rounded half-to-even and clamped to [1,10]. Every adjustment is a
// multiple of 0.5, so exact half-point totals are common and the tie-break
// direction matters.
func Score(domain string, yearsPopular []int, status models.Status, whois models.WhoisRecord) models.Recommendation {
	score := baseScore
	var reasons []string

	// Age
	if whois.CreationDate != "" {
		if created, err := time.Parse("2006-01-02", whois.CreationDate); err == nil {
			age := time.Since(created).Hours() / 24 / daysPerYear
			switch {
			case age >= 20:
				score += 2.0
				reasons = append(reasons, fmt.Sprintf("Very old domain (%d years)", int(age)))
			case age >= 10:
				score += 1.5
				reasons = append(reasons, fmt.Sprintf("Established domain (%d years)", int(age)))
			case age >= 5:
				score += 0.5
				reasons = append(reasons, fmt.Sprintf("Moderate age (%d years)", int(age)))
			}
		}
	}

	// Name length
	name, _, _ := strings.Cut(domain, ".")
	switch nameLen := len(name); {
	case nameLen <= 3:
		score += 2.0
		reasons = append(reasons, fmt.Sprintf("Ultra-short name (%d chars)", nameLen))
	case nameLen <= 5:
		score += 1.5
		reasons = append(reasons, fmt.Sprintf("Short name (%d chars)", nameLen))
	case nameLen <= 8:
		score += 0.5
		reasons = append(reasons, "Concise name")
	case nameLen >= 15:
		score -= 1.0
		reasons = append(reasons, "Long name reduces memorability")
	}

	// TLD
	switch {
	case strings.HasSuffix(domain, ".com"):
		score += 1.0
		reasons = append(reasons, ".com TLD premium")
	case strings.HasSuffix(domain, ".io"), strings.HasSuffix(domain, ".ai"), strings.HasSuffix(domain, ".co"):
		score += 0.5
		tld := domain[strings.LastIndexByte(domain, '.')+1:]
		reasons = append(reasons, fmt.Sprintf("Desirable TLD (%s)", tld))
	}

	// Historical popularity
	switch yearCount := len(yearsPopular); {
	case yearCount >= 5:
		score += 1.5
		reasons = append(reasons, fmt.Sprintf("Appeared in %d years of top lists", yearCount))
	case yearCount >= 3:
		score += 1.0
		reasons = append(reasons, fmt.Sprintf("Appeared in %d years of top lists", yearCount))
	case yearCount >= 2:
		score += 0.5
		reasons = append(reasons, fmt.Sprintf("Appeared in %d years of top lists", yearCount))
	}

	// High-value keywords
	var matched []string
	for _, kw := range highValueKeywords {
		if strings.Contains(name, kw) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 0 {
		score += math.Min(float64(len(matched))*0.5, 1.5)
		shown := matched
		if len(shown) > 3 {
			shown = shown[:3]
		}
		reasons = append(reasons, "High-value keywords: "+strings.Join(shown, ", "))
	}

	// Brandability
	vowels := strings.Count(name, "a") + strings.Count(name, "e") +
		strings.Count(name, "i") + strings.Count(name, "o") + strings.Count(name, "u")
	vowelRatio := float64(vowels) / math.Max(float64(len(name)), 1)
	hyphens := strings.Count(name, "-")
	digits := 0
	for _, c := range name {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	if vowelRatio >= 0.2 && vowelRatio <= 0.6 && hyphens == 0 && digits == 0 {
		score += 0.5
		reasons = append(reasons, "Good brandability (pronounceable, clean)")
	} else if hyphens >= 2 || digits >= 3 {
		score -= 0.5
		reasons = append(reasons, "Low brandability (hyphens/digits)")
	}

	// Status
	switch status {
	case models.StatusAvailable:
		score += 0.5
		reasons = append(reasons, "Potentially available for registration")
	case models.StatusForSale:
		reasons = append(reasons, "Listed for sale -- acquisition possible")
	case models.StatusActive:
		score -= 0.5
		reasons = append(reasons, "Currently active -- acquisition unlikely")
	}

	final := clamp(int(math.RoundToEven(score)))

	if len(reasons) == 0 {
		reasons = append(reasons, "Standard domain")
	}

	return models.Recommendation{
		Score:          final,
		Reason:         strings.Join(reasons, "; "),
		EstimatedValue: EstimateValue(final, status),
	}
}

// EstimateValue maps a final score to a dollar range. Available domains
// always cost registration money regardless of score.
func EstimateValue(score int, status models.Status) string {
	if status == models.StatusAvailable {
		return availableValue
	}
	if v, ok := valueRanges[score]; ok {
		return v
	}
	return "$1,000-$5,000"
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
