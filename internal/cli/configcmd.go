package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/config"
	"github.com/example/pointage/internal/db"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		dbPath, err := db.GetDBPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n", path)
		fmt.Printf("  date_format = %q\n", cfg.DateFormat)
		fmt.Printf("  csv_separator = %q\n", cfg.CSVSeparator)
		fmt.Printf("  currency = %q\n", cfg.Currency)
		fmt.Printf("  storage = %q\n", cfg.Storage)
		fmt.Printf("Database: %s\n", dbPath)
		return nil
	},
}

// ConfigCmd returns the config command with all subcommands attached.
func ConfigCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cfgCmd.AddCommand(configShowCmd)
	return cfgCmd
}
