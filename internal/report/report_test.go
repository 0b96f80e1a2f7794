package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hakim/domainscout/internal/models"
)

func result(domain string, status models.Status, score int) models.CheckResult {
	return models.CheckResult{
		Domain: domain,
		Status: status,
		Recommendation: models.Recommendation{
			Score:          score,
			Reason:         "Standard domain",
			EstimatedValue: "$500-$2,000",
		},
		CheckedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildSummaryStableShape(t *testing.T) {
	summary := BuildSummary(nil)

	if len(summary) != len(models.AllStatuses) {
		t.Fatalf("summary has %d keys, want %d", len(summary), len(models.AllStatuses))
	}
	for _, s := range models.AllStatuses {
		if _, ok := summary[s]; !ok {
			t.Errorf("summary missing status %q", s)
		}
	}
}

func TestBuildSummaryCounts(t *testing.T) {
	results := []models.CheckResult{
		result("a.com", models.StatusActive, 5),
		result("b.com", models.StatusActive, 4),
		result("c.com", models.StatusForSale, 8),
		result("d.com", models.StatusError, 1),
	}
	summary := BuildSummary(results)

	if summary[models.StatusActive] != 2 {
		t.Errorf("active = %d, want 2", summary[models.StatusActive])
	}
	if summary[models.StatusForSale] != 1 {
		t.Errorf("for_sale = %d, want 1", summary[models.StatusForSale])
	}
	if summary[models.StatusParked] != 0 {
		t.Errorf("parked = %d, want 0", summary[models.StatusParked])
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	out := BuildOutput([]models.CheckResult{
		result("a.com", models.StatusForSale, 8),
		result("b.com", models.StatusActive, 5),
	})

	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteJSON(out, path); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	var decoded Output
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.TotalDomains != 2 {
		t.Errorf("total_domains = %d, want 2", decoded.TotalDomains)
	}
	if len(decoded.Results) != 2 || decoded.Results[0].Domain != "a.com" {
		t.Errorf("results = %+v, want original order preserved", decoded.Results)
	}
	if decoded.Summary[models.StatusForSale] != 1 {
		t.Errorf("summary[for_sale] = %d, want 1", decoded.Summary[models.StatusForSale])
	}
}

func TestWriteMarkdownSections(t *testing.T) {
	code := 200
	active := result("busy.com", models.StatusActive, 5)
	active.HTTPStatusCode = &code
	active.YearsPopular = []int{2000, 2002}

	out := BuildOutput([]models.CheckResult{
		result("deal.com", models.StatusForSale, 8),
		active,
	})

	path := filepath.Join(t.TempDir(), "report.md")
	if err := WriteMarkdown(out, path); err != nil {
		t.Fatalf("WriteMarkdown() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Domain Check Report",
		"## Status Breakdown",
		"## Acquisition Candidates",
		"## All Results",
		"| deal.com | for_sale | 8 |",
		"| busy.com | 2000, 2002 | active | 200 | 5 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Active domains are not acquisition candidates.
	candidates := md[strings.Index(md, "## Acquisition Candidates"):strings.Index(md, "## All Results")]
	if strings.Contains(candidates, "busy.com") {
		t.Error("active domain listed as acquisition candidate")
	}
}

func TestErroredDomainsCapped(t *testing.T) {
	var results []models.CheckResult
	for i := 0; i < 13; i++ {
		results = append(results, result(fmt.Sprintf("err%02d.com", i), models.StatusError, 1))
	}

	domains, more := erroredDomains(results, 10)
	if len(domains) != 10 {
		t.Errorf("listed %d domains, want 10", len(domains))
	}
	if more != 3 {
		t.Errorf("more = %d, want 3", more)
	}

	domains, more = erroredDomains(results[:4], 10)
	if len(domains) != 4 || more != 0 {
		t.Errorf("got %d domains, more=%d; want 4 domains, more=0", len(domains), more)
	}
}

func TestWriteXLSX(t *testing.T) {
	out := BuildOutput([]models.CheckResult{
		result("deal.com", models.StatusForSale, 8),
		result("busy.com", models.StatusActive, 5),
	})

	path := filepath.Join(t.TempDir(), "results.xlsx")
	if err := WriteXLSX(out, path); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("spreadsheet not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("spreadsheet file is empty")
	}
}
