package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/wire"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Submit, approve and reject time entries",
}

func entryIDArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid entry id: %s", args[0])
	}
	return id, nil
}

var workflowSubmitCmd = &cobra.Command{
	Use:   "submit [entry-id]",
	Short: "Submit an entry for approval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entryIDArg(args)
		if err != nil {
			return err
		}
		if err := wire.WorkflowService().Submit(context.Background(), id); err != nil {
			return fmt.Errorf("failed to submit entry: %w", err)
		}
		fmt.Printf("✓ Entry %d submitted\n", id)
		return nil
	},
}

var workflowApproveCmd = &cobra.Command{
	Use:   "approve [entry-id]",
	Short: "Approve a submitted entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entryIDArg(args)
		if err != nil {
			return err
		}
		manager, _ := cmd.Flags().GetString("manager")
		if err := wire.WorkflowService().Approve(context.Background(), id, manager); err != nil {
			return fmt.Errorf("failed to approve entry: %w", err)
		}
		fmt.Printf("✓ Entry %d approved by %s\n", id, manager)
		return nil
	},
}

var workflowRejectCmd = &cobra.Command{
	Use:   "reject [entry-id]",
	Short: "Reject a submitted entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entryIDArg(args)
		if err != nil {
			return err
		}
		manager, _ := cmd.Flags().GetString("manager")
		reason, _ := cmd.Flags().GetString("reason")
		if err := wire.WorkflowService().Reject(context.Background(), id, manager, reason); err != nil {
			return fmt.Errorf("failed to reject entry: %w", err)
		}
		fmt.Printf("✓ Entry %d rejected by %s\n", id, manager)
		return nil
	},
}

// WorkflowCmd returns the workflow command with all subcommands attached.
func WorkflowCmd() *cobra.Command {
	workflowApproveCmd.Flags().String("manager", "Manager", "Name of the approving manager")
	workflowRejectCmd.Flags().String("manager", "Manager", "Name of the rejecting manager")
	workflowRejectCmd.Flags().String("reason", "", "Rejection reason")
	workflowRejectCmd.MarkFlagRequired("reason")

	workflowCmd.AddCommand(workflowSubmitCmd)
	workflowCmd.AddCommand(workflowApproveCmd)
	workflowCmd.AddCommand(workflowRejectCmd)

	return workflowCmd
}
