package report

import (
	"fmt"
	"strings"

	"github.com/hakim/domainscout/internal/models"
)

// maxErrorsShown bounds the errored-domain list in the console summary
const maxErrorsShown = 10

// PrintSummary writes the human-readable run summary to stdout
func PrintSummary(out *Output) {
	sep := strings.Repeat("=", 60)

	fmt.Println()
	fmt.Println(sep)
	fmt.Println("DOMAIN CHECK SUMMARY")
	fmt.Println(sep)
	fmt.Printf("  Total checked:  %d\n", out.TotalDomains)
	fmt.Printf("  Active:         %d\n", out.Summary[models.StatusActive])
	fmt.Printf("  Parked:         %d\n", out.Summary[models.StatusParked])
	fmt.Printf("  For Sale:       %d\n", out.Summary[models.StatusForSale])
	fmt.Printf("  Redirect:       %d\n", out.Summary[models.StatusRedirect])
	fmt.Printf("  Expired:        %d\n", out.Summary[models.StatusExpired])
	fmt.Printf("  Available:      %d\n", out.Summary[models.StatusAvailable])
	fmt.Printf("  Errors:         %d\n", out.Summary[models.StatusError])
	fmt.Println(sep)

	interesting := out.Summary[models.StatusForSale] +
		out.Summary[models.StatusAvailable] +
		out.Summary[models.StatusExpired]
	if interesting > 0 {
		fmt.Printf("\n  ** %d domains may be acquirable! Check the JSON output for details. **\n", interesting)
	}

	if errored, more := erroredDomains(out.Results, maxErrorsShown); len(errored) > 0 {
		fmt.Printf("\n  Domains with errors: %s\n", strings.Join(errored, ", "))
		if more > 0 {
			fmt.Printf("    ... and %d more\n", more)
		}
	}

	fmt.Println()
}

// erroredDomains returns the domains of error-status results, capped at max
func erroredDomains(results []models.CheckResult, max int) (domains []string, more int) {
	for _, r := range results {
		if r.Status == models.StatusError {
			domains = append(domains, r.Domain)
		}
	}
	if len(domains) > max {
		more = len(domains) - max
		domains = domains[:max]
	}
	return domains, more
}
