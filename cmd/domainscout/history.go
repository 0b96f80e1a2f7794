package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hakim/domainscout/internal/models"
	"github.com/hakim/domainscout/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past check runs",
	Long: `Display a formatted table of past check runs.

Runs are listed newest-first. Each row shows the run ID (truncated), start
time, completion status, scope, and the domain count.

Use --limit to cap the number of rows shown (default: 10).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Get flags
		limit, _ := cmd.Flags().GetInt("limit")

		// Step 2: Open bbolt store
		store, err := storage.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		// Step 3: List runs (sorted newest-first by store.ListRuns)
		runs, err := store.ListRuns()
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No run history found")
			return nil
		}

		// Step 4: Apply limit
		if limit > 0 && len(runs) > limit {
			runs = runs[:limit]
		}

		// Step 5: Print formatted table
		const separator = "────────────────────────────────────────────────────────────────────────"

		fmt.Println("\nCheck Run History")
		fmt.Println(separator)
		fmt.Printf("  %-3s  %-12s  %-18s  %-10s  %-14s  %s\n", "#", "Run ID", "Started", "Status", "Scope", "Domains")
		fmt.Println(separator)

		for i, run := range runs {
			fmt.Printf("  %-3d  %-12s  %-18s  %-10s  %-14s  %d\n",
				i+1,
				shortRunID(run.ID),
				run.StartedAt.UTC().Format("2006-01-02 15:04"),
				formatRunStatus(run.Status),
				formatScope(run),
				run.TotalDomains)
		}

		fmt.Println(separator)
		fmt.Printf("Total: %d run(s)\n\n", len(runs))

		return nil
	},
}

// shortRunID returns the first 8 characters of a UUID followed by "..." for
// compact table display. Falls back to the full ID when shorter than 8 chars.
func shortRunID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

// formatRunStatus converts a RunStatus to a consistent display string
func formatRunStatus(s models.RunStatus) string {
	switch s {
	case models.RunComplete:
		return "complete"
	case models.RunFailed:
		return "failed"
	case models.RunRunning:
		return "running"
	case models.RunPending:
		return "pending"
	default:
		return string(s)
	}
}

// formatScope describes what subset of the source list a run covered
func formatScope(run *models.RunMeta) string {
	var parts []string
	if run.YearFilter != 0 {
		parts = append(parts, fmt.Sprintf("year %d", run.YearFilter))
	}
	if run.Quick {
		parts = append(parts, "quick")
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, ", ")
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
