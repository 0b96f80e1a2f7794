package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hakim/domainscout/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "domainscout",
	Short: "Classify historical domains and score acquisition candidates",
	Long: `Domainscout takes lists of historically popular domains, probes each one
over HTTP, analyzes page content for parking and for-sale signals, queries
WHOIS registration data, and classifies every domain into a lifecycle state
(active, parked, for_sale, redirect, expired, available).

Each domain also receives a 1-10 acquisition score with a rough value
estimate, so the output doubles as a triage list for domain buying.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		// Commands that don't need a config
		skipConfig := map[string]bool{
			"init":    true,
			"help":    true,
			"version": true,
		}
		if skipConfig[cmd.Name()] {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		}

		cfg, err = config.Load("")
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				// No config file found, run on defaults.
				cfg = config.DefaultConfig()
				return nil
			}
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
