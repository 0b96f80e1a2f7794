package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

// WriteMarkdown generates a markdown report of the check run and writes it
// to the specified output path.
func WriteMarkdown(out *Output, outputPath string) error {
	var b strings.Builder

	// Header
	b.WriteString("# Domain Check Report\n\n")
	b.WriteString(fmt.Sprintf("**Date:** %s\n", out.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Domains checked:** %d\n\n", out.TotalDomains))

	// Status breakdown
	b.WriteString("## Status Breakdown\n\n")
	b.WriteString("| Status | Count |\n")
	b.WriteString("|--------|-------|\n")
	for _, s := range models.AllStatuses {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", s, out.Summary[s]))
	}
	b.WriteString("\n")

	// Acquirable domains
	b.WriteString("## Acquisition Candidates\n\n")
	candidates := acquirable(out.Results)
	if len(candidates) > 0 {
		b.WriteString("| Domain | Status | Score | Estimated Value | Reason |\n")
		b.WriteString("|--------|--------|-------|-----------------|--------|\n")
		for _, r := range candidates {
			b.WriteString(fmt.Sprintf("| %s | %s | %d | %s | %s |\n",
				r.Domain, r.Status, r.Recommendation.Score,
				r.Recommendation.EstimatedValue, r.Recommendation.Reason))
		}
	} else {
		b.WriteString("None found.\n")
	}
	b.WriteString("\n")

	// Full results table
	b.WriteString("## All Results\n\n")
	b.WriteString("| Domain | Years | Status | HTTP | Score | Estimated Value |\n")
	b.WriteString("|--------|-------|--------|------|-------|----------------|\n")
	for _, r := range out.Results {
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d | %s |\n",
			r.Domain, formatYears(r.YearsPopular), r.Status,
			formatHTTPStatus(r.HTTPStatusCode),
			r.Recommendation.Score, r.Recommendation.EstimatedValue))
	}
	b.WriteString("\n")

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", outputPath, err)
	}

	return nil
}

// acquirable returns results in states worth following up on, keeping the
// incoming (score-sorted) order.
func acquirable(results []models.CheckResult) []models.CheckResult {
	var out []models.CheckResult
	for _, r := range results {
		switch r.Status {
		case models.StatusForSale, models.StatusAvailable, models.StatusExpired:
			out = append(out, r)
		}
	}
	return out
}

func formatYears(years []int) string {
	if len(years) == 0 {
		return "-"
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprintf("%d", y)
	}
	return strings.Join(parts, ", ")
}

func formatHTTPStatus(code *int) string {
	if code == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *code)
}

// timestamp used by the xlsx writer for consistent cell formatting
func formatCheckedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
