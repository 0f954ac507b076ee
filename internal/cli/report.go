package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/core/dates"
	"github.com/example/pointage/internal/wire"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly reports and exports",
}

func monthYearFlags(cmd *cobra.Command) (int, int) {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	return month, year
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Print the monthly report for an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetInt("employee")
		month, year := monthYearFlags(cmd)

		report, err := wire.TimesheetService().MonthlyReport(context.Background(), employeeID, month, year)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		fmt.Print(report)
		return nil
	},
}

var reportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export an employee's monthly entries as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetInt("employee")
		month, year := monthYearFlags(cmd)
		output, _ := cmd.Flags().GetString("output")

		csv, err := wire.TimesheetService().ExportCSV(context.Background(), employeeID, month, year)
		if err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}

		if output == "" {
			fmt.Print(csv)
			return nil
		}
		if err := os.WriteFile(output, []byte(csv), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("✓ Exported to %s\n", output)
		return nil
	},
}

var reportStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over all entries of a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		month, year := monthYearFlags(cmd)

		stats, err := wire.TimesheetService().Statistics(context.Background(), month, year)
		if err != nil {
			return fmt.Errorf("failed to compute statistics: %w", err)
		}

		fmt.Printf("Statistics %02d/%d\n", month, year)
		fmt.Printf("  Entries: %d\n", stats.EntryCount)
		fmt.Printf("  Total hours: %.1fh\n", stats.TotalHours)
		fmt.Printf("  Average hours: %.2fh\n", stats.AverageHours)
		fmt.Printf("  Max hours: %.1fh\n", stats.MaxHours)

		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		days, err := dates.BusinessDays(first.Format("02/01/2006"), last.Format("02/01/2006"))
		if err != nil {
			return err
		}
		fmt.Printf("  Business days: %d\n", days)
		return nil
	},
}

var reportHoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Total hours logged by an employee in a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, _ := cmd.Flags().GetInt("employee")
		month, year := monthYearFlags(cmd)

		hours, err := wire.TimesheetService().TotalHoursForEmployee(context.Background(), employeeID, month, year)
		if err != nil {
			return fmt.Errorf("failed to sum hours: %w", err)
		}
		fmt.Printf("%.1fh\n", hours)
		return nil
	},
}

var reportCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Total cost of a project over a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetInt("project")
		month, year := monthYearFlags(cmd)

		cost, err := wire.TimesheetService().TotalCostForProject(context.Background(), projectID, month, year)
		if err != nil {
			return fmt.Errorf("failed to sum cost: %w", err)
		}
		withVAT, _ := cmd.Flags().GetBool("with-vat")
		if withVAT {
			fmt.Printf("%.2f EUR HT / %.2f EUR TTC\n", cost, cost*(1+contract.VATRate))
			return nil
		}
		fmt.Printf("%.2f EUR\n", cost)
		return nil
	},
}

// ReportCmd returns the report command with all subcommands attached.
func ReportCmd() *cobra.Command {
	for _, c := range []*cobra.Command{reportMonthlyCmd, reportCSVCmd, reportStatsCmd, reportHoursCmd, reportCostCmd} {
		c.Flags().Int("month", 0, "Month (1-12)")
		c.Flags().Int("year", 0, "Year")
		c.MarkFlagRequired("month")
		c.MarkFlagRequired("year")
	}
	for _, c := range []*cobra.Command{reportMonthlyCmd, reportCSVCmd, reportHoursCmd} {
		c.Flags().Int("employee", 0, "Employee ID")
		c.MarkFlagRequired("employee")
	}
	reportCostCmd.Flags().Int("project", 0, "Project ID")
	reportCostCmd.MarkFlagRequired("project")
	reportCostCmd.Flags().Bool("with-vat", false, "Also print the cost including VAT")
	reportCSVCmd.Flags().StringP("output", "o", "", "Write CSV to a file instead of stdout")

	reportCmd.AddCommand(reportMonthlyCmd)
	reportCmd.AddCommand(reportCSVCmd)
	reportCmd.AddCommand(reportStatsCmd)
	reportCmd.AddCommand(reportHoursCmd)
	reportCmd.AddCommand(reportCostCmd)

	return reportCmd
}
