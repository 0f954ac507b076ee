package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/cli"
	"github.com/example/pointage/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "pointage",
		Short:   "pointage - timesheet management for employees and projects",
		Version: version.String(),
		Long: `pointage is a CLI tool for tracking employee time entries on projects.
It validates entries against contract rules, renders monthly reports and
CSV exports, and drives the submission/approval workflow.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.EmployeeCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.EntryCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.WorkflowCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
