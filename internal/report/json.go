// Package report renders check results as the JSON report document, a
// markdown summary, an optional spreadsheet, and the console banner.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

// Output is the top-level structure of the JSON report
type Output struct {
	GeneratedAt  time.Time             `json:"generated_at"`
	TotalDomains int                   `json:"total_domains"`
	Summary      map[models.Status]int `json:"summary"`
	Results      []models.CheckResult  `json:"results"`
}

// BuildOutput assembles the report document from sorted results
func BuildOutput(results []models.CheckResult) *Output {
	return &Output{
		GeneratedAt:  time.Now().UTC(),
		TotalDomains: len(results),
		Summary:      BuildSummary(results),
		Results:      results,
	}
}

// BuildSummary counts results per status. Every defined status appears in
// the map even at zero, so consumers see a stable shape.
func BuildSummary(results []models.CheckResult) map[models.Status]int {
	summary := make(map[models.Status]int, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		summary[s] = 0
	}
	for _, r := range results {
		summary[r.Status]++
	}
	return summary
}

// WriteJSON writes the report document to outputPath, indented
func WriteJSON(out *Output, outputPath string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing results to %s: %w", outputPath, err)
	}
	return nil
}
