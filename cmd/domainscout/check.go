package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hakim/domainscout/internal/checker"
	"github.com/hakim/domainscout/internal/models"
	"github.com/hakim/domainscout/internal/pipeline"
	"github.com/hakim/domainscout/internal/probe"
	"github.com/hakim/domainscout/internal/report"
	"github.com/hakim/domainscout/internal/sources"
	"github.com/hakim/domainscout/internal/status"
	"github.com/hakim/domainscout/internal/storage"
	"github.com/hakim/domainscout/internal/whois"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check all domains and write the results report",
	Long: `Run the full check pipeline: probe every domain in the source list over
HTTPS/HTTP, analyze page content for parking and for-sale signals, look up
WHOIS registration data, classify each domain's lifecycle state, and score
it for acquisition worthiness.

Results are written as a JSON report sorted by score (descending). Optional
markdown and xlsx exports are available via --report and --xlsx. Run
metadata is recorded in the configured database; see 'domainscout history'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		year, _ := cmd.Flags().GetInt("year")
		quick, _ := cmd.Flags().GetBool("quick")
		workers, _ := cmd.Flags().GetInt("workers")
		output, _ := cmd.Flags().GetString("output")
		reportPath, _ := cmd.Flags().GetString("report")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")

		if output == "" {
			output = cfg.Output
		}
		if workers == 0 {
			workers = cfg.Workers
		}

		// Step 2: Load the domain source list
		byYear, err := loadDomainList()
		if err != nil {
			return err
		}

		if year != 0 {
			if _, ok := byYear[year]; !ok {
				return fmt.Errorf("year %d not found in domain lists. Available years: %v",
					year, sources.Years(byYear))
			}
		}

		// Step 3: Build the deduplicated domain index
		logrus.Info("Building domain index...")
		records := sources.BuildIndex(byYear, year, quick)
		if len(records) == 0 {
			logrus.Warn("No domains to check. Verify the domain list and filters.")
			return nil
		}

		mode := ""
		if quick {
			mode = " (quick mode)"
		}
		fmt.Printf("[*] Checking %d unique domains with %d workers%s...\n",
			len(records), workers, mode)

		// Step 4: Open the run store and record the run as running
		store, err := storage.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		run := models.NewRun(year, quick, workers)
		run.TotalDomains = len(records)
		run.OutputPath = output
		run.Status = models.RunRunning
		if err := store.SaveRun(run); err != nil {
			return fmt.Errorf("saving run record: %w", err)
		}

		// Step 5: Assemble the pipeline
		prober := probe.New(probe.Config{
			Timeout:      cfg.HTTP.Timeout,
			UserAgent:    cfg.HTTP.UserAgent,
			MaxRetries:   cfg.HTTP.MaxRetries,
			RetryBackoff: cfg.HTTP.RetryBackoff,
		})
		whoisClient := whois.NewClient(cfg.Whois.Timeout)
		chk := checker.New(prober, whoisClient, status.NewAllowList(cfg.KnownActive))

		runner := &pipeline.Runner{
			Check:   chk.Check,
			Gate:    pipeline.NewGate(cfg.RateLimit.Delay),
			Workers: workers,
			OnResult: func(res models.CheckResult, completed, total int) {
				fmt.Printf("[%d/%d] %s - %s\n", completed, total, res.Domain, res.Status)
			},
		}

		// Step 6: Run all checks
		results := runner.Run(context.Background(), records)

		// Step 7: Write the JSON report
		out := report.BuildOutput(results)
		if err := report.WriteJSON(out, output); err != nil {
			return err
		}
		logrus.Infof("Results written to %s", output)

		// Step 8: Optional exports are best-effort, warn but do not fail
		if reportPath != "" {
			if err := report.WriteMarkdown(out, reportPath); err != nil {
				fmt.Printf("[!] Warning: failed to write markdown report: %v\n", err)
			} else {
				fmt.Printf("[+] Report written to %s\n", reportPath)
			}
		}
		if xlsxPath != "" {
			if err := report.WriteXLSX(out, xlsxPath); err != nil {
				fmt.Printf("[!] Warning: failed to write spreadsheet: %v\n", err)
			} else {
				fmt.Printf("[+] Spreadsheet written to %s\n", xlsxPath)
			}
		}

		// Step 9: Record run completion
		if err := store.CompleteRun(run.ID, models.RunComplete, out.Summary); err != nil {
			fmt.Printf("[!] Warning: could not update run record: %v\n", err)
		}

		// Step 10: Print the summary banner
		report.PrintSummary(out)

		return nil
	},
}

func init() {
	checkCmd.Flags().Int("year", 0, "Only check domains from this specific year")
	checkCmd.Flags().Bool("quick", false, "Quick mode: only check first 5 domains per year")
	checkCmd.Flags().Int("workers", 0, "Number of concurrent workers (default from config)")
	checkCmd.Flags().StringP("output", "o", "", "Output JSON file path (default from config)")
	checkCmd.Flags().String("report", "", "Also write a markdown report to this path")
	checkCmd.Flags().String("xlsx", "", "Also write an xlsx spreadsheet to this path")
	rootCmd.AddCommand(checkCmd)
}

// loadDomainList returns the configured external source list when set,
// otherwise the compiled-in one.
func loadDomainList() (map[int][]string, error) {
	if cfg.DomainFile != "" {
		return sources.LoadFile(cfg.DomainFile)
	}
	return sources.LoadEmbedded()
}
