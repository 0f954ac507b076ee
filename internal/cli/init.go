// Package cli provides the CLI commands for the pointage application.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/config"
	"github.com/example/pointage/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the pointage database",
		Long:  `Initialize the pointage database at ~/.pointage/pointage.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureDirectories(); err != nil {
				return err
			}
			if _, err := config.Load(); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing pointage database at %s\n", dbPath)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  pointage seed")
			fmt.Println("  pointage employee list")

			return nil
		},
	}
}
