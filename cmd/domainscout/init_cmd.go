package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hakim/domainscout/internal/config"
	"github.com/hakim/domainscout/internal/storage"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize domainscout with default configuration",
	Long: `Creates a default configuration file (domainscout.yaml) and sets up the
database for storing run metadata.

This is typically the first command you run when setting up domainscout,
though 'check' also works without a config file by using built-in defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(initDir, "domainscout.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s. Use --force to overwrite", configPath)
		}

		// Create default config
		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		fmt.Printf("Created %s with default configuration\n", configPath)

		// Load the config we just created to get paths
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize database
		store, err := storage.NewStore(loaded.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()
		fmt.Printf("Initialized database: %s\n", loaded.DBPath)

		fmt.Println("\nSetup complete. Run 'domainscout check' to start a check run.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config file")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to create config in")
	rootCmd.AddCommand(initCmd)
}
