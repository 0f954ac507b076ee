package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("id")
		code, _ := cmd.Flags().GetString("code")
		budget, _ := cmd.Flags().GetInt("budget")

		proj, err := wire.TimesheetService().AddProject(context.Background(), primary.AddProjectRequest{
			ID:         id,
			Name:       args[0],
			Code:       code,
			HourBudget: budget,
		})
		if err != nil {
			return fmt.Errorf("failed to add project: %w", err)
		}

		fmt.Printf("✓ Created project %d: %s (%s)\n", proj.ID, proj.Name, proj.Code)
		fmt.Printf("  Budget: %dh\n", proj.HourBudget)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := wire.TimesheetService().ListProjects(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCODE\tBUDGET")
		for _, p := range projects {
			fmt.Fprintf(w, "%d\t%s\t%s\t%dh\n", p.ID, p.Name, p.Code, p.HourBudget)
		}
		return w.Flush()
	},
}

// ProjectCmd returns the project command with all subcommands attached.
func ProjectCmd() *cobra.Command {
	projectAddCmd.Flags().Int("id", 0, "Project ID")
	projectAddCmd.Flags().String("code", "", "Project code")
	projectAddCmd.Flags().Int("budget", 0, "Hour budget")
	projectAddCmd.MarkFlagRequired("id")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)

	return projectCmd
}
