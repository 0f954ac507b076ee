package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/core/dates"
	"github.com/example/pointage/internal/core/entry"
	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/wire"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage time entries",
	Long:  "Record, validate and list time entries. Recording never validates; run 'entry validate' first when a pre-check is wanted.",
}

func entryRequestFromFlags(cmd *cobra.Command) primary.RecordEntryRequest {
	employeeID, _ := cmd.Flags().GetInt("employee")
	projectID, _ := cmd.Flags().GetInt("project")
	date, _ := cmd.Flags().GetString("date")
	hours, _ := cmd.Flags().GetFloat64("hours")
	description, _ := cmd.Flags().GetString("description")

	if date == "" {
		date = dates.Today()
	}

	return primary.RecordEntryRequest{
		EmployeeID:  employeeID,
		ProjectID:   projectID,
		Date:        date,
		Hours:       hours,
		Description: description,
	}
}

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a time entry (stored as draft, no validation)",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := entryRequestFromFlags(cmd)

		e, err := wire.TimesheetService().RecordEntry(context.Background(), req)
		if err != nil {
			return fmt.Errorf("failed to record entry: %w", err)
		}

		fmt.Printf("✓ Recorded entry %d: %.1fh on %s (status: %s)\n", e.ID, e.Hours, e.Date, e.Status)
		return nil
	},
}

var entryValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Pre-check a candidate entry without storing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := entryRequestFromFlags(cmd)

		problems, err := wire.TimesheetService().ValidateEntry(context.Background(), req)
		if err != nil {
			return fmt.Errorf("failed to validate entry: %w", err)
		}

		if len(problems) == 0 {
			color.New(color.FgGreen).Println("✓ Entry is valid")
			return nil
		}

		red := color.New(color.FgRed)
		for _, p := range problems {
			red.Printf("✗ %s\n", p)
		}
		return fmt.Errorf("%d validation error(s)", len(problems))
	},
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		statusName, _ := cmd.Flags().GetString("status")
		var statusFilter entry.Status
		if statusName != "" {
			st, ok := entry.ParseStatus(statusName)
			if !ok {
				return fmt.Errorf("unknown status: %s\nValid statuses: brouillon, soumis, approuve, rejete", statusName)
			}
			statusFilter = st
		}

		entries, err := wire.TimesheetService().ListEntries(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMPLOYEE\tPROJECT\tDATE\tHOURS\tSTATUS\tDESCRIPTION")
		shown := 0
		for _, e := range entries {
			if statusFilter != "" && e.Status != statusFilter {
				continue
			}
			status := string(e.Status)
			if entry.IsTerminal(e.Status) {
				status += " (final)"
			}
			fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%.1f\t%s\t%s\n",
				e.ID, e.EmployeeID, e.ProjectID, e.Date, e.Hours, status, e.Description)
			shown++
		}
		if shown == 0 {
			fmt.Println("No entries found")
			return nil
		}
		return w.Flush()
	},
}

// EntryCmd returns the entry command with all subcommands attached.
func EntryCmd() *cobra.Command {
	for _, c := range []*cobra.Command{entryAddCmd, entryValidateCmd} {
		c.Flags().Int("employee", 0, "Employee ID")
		c.Flags().Int("project", 0, "Project ID")
		c.Flags().String("date", "", "Entry date (DD/MM/YYYY, default today)")
		c.Flags().Float64("hours", 0, "Hours worked")
		c.Flags().String("description", "", "Work description")
		c.MarkFlagRequired("employee")
		c.MarkFlagRequired("project")
		c.MarkFlagRequired("hours")
	}
	entryListCmd.Flags().String("status", "", "Filter by status (brouillon, soumis, approuve, rejete)")

	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryValidateCmd)
	entryCmd.AddCommand(entryListCmd)

	return entryCmd
}
