// Package sources supplies the static year-indexed domain list and builds
// the deduplicated DomainRecord index consumed by the check pipeline.
package sources

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hakim/domainscout/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed domains.yaml
var embeddedDomains []byte

// quickPerYear caps domains taken per year in quick mode
const quickPerYear = 5

// LoadEmbedded parses the compiled-in year-to-domains list
func LoadEmbedded() (map[int][]string, error) {
	return parse(embeddedDomains)
}

// LoadFile reads a user-supplied YAML file with the same year-to-domains shape
func LoadFile(path string) (map[int][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading domain list %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (map[int][]string, error) {
	byYear := make(map[int][]string)
	if err := yaml.Unmarshal(data, &byYear); err != nil {
		return nil, fmt.Errorf("parsing domain list: %w", err)
	}
	return byYear, nil
}

// Years returns the years present in the source list, ascending
func Years(byYear map[int][]string) []int {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// BuildIndex deduplicates the year-indexed list into DomainRecords.
//
// Domains are trimmed and lowercased before deduplication; empty entries are
// dropped. Each record's Years slice is ascending and unique. filterYear
// restricts the index to a single year when non-zero, and quick takes only
// the first few domains per year for fast smoke runs. Records are returned
// sorted by domain name.
func BuildIndex(byYear map[int][]string, filterYear int, quick bool) []models.DomainRecord {
	domainYears := make(map[string][]int)

	years := Years(byYear)
	if filterYear != 0 {
		years = []int{filterYear}
	}

	for _, year := range years {
		domains := byYear[year]
		if quick && len(domains) > quickPerYear {
			domains = domains[:quickPerYear]
		}
		for _, domain := range domains {
			domain = strings.ToLower(strings.TrimSpace(domain))
			if domain == "" {
				continue
			}
			domainYears[domain] = append(domainYears[domain], year)
		}
	}

	records := make([]models.DomainRecord, 0, len(domainYears))
	for domain, yrs := range domainYears {
		records = append(records, models.DomainRecord{
			Domain: domain,
			Years:  uniqueSorted(yrs),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Domain < records[j].Domain
	})

	return records
}

// uniqueSorted returns the input years deduplicated and ascending
func uniqueSorted(years []int) []int {
	seen := make(map[int]bool, len(years))
	var out []int
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Ints(out)
	return out
}
