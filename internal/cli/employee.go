package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/pointage/internal/core/contact"
	"github.com/example/pointage/internal/core/contract"
	"github.com/example/pointage/internal/ports/primary"
	"github.com/example/pointage/internal/wire"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employees",
	Long:  "Register and inspect employees and their contracts",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add [surname] [given-name]",
	Short: "Register a new employee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("id")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		hireDate, _ := cmd.Flags().GetString("hire-date")
		contractName, _ := cmd.Flags().GetString("contract")
		rate, _ := cmd.Flags().GetFloat64("rate")

		ct, ok := contract.Parse(contractName)
		if !ok {
			return fmt.Errorf("unknown contract type: %s\nValid types: CDI, CDD, Stage, Alternance, Freelance", contractName)
		}

		emp, err := wire.TimesheetService().AddEmployee(context.Background(), primary.AddEmployeeRequest{
			ID:         id,
			Surname:    args[0],
			GivenName:  args[1],
			Phone:      phone,
			Email:      email,
			HireDate:   hireDate,
			Contract:   ct,
			HourlyRate: rate,
		})
		if err != nil {
			return fmt.Errorf("failed to add employee: %w", err)
		}

		fmt.Printf("✓ Created employee %d: %s %s\n", emp.ID, emp.Surname, emp.GivenName)
		fmt.Printf("  Contract: %s\n", emp.Contract.Label())
		fmt.Printf("  Rate: %.2f EUR/h\n", emp.HourlyRate)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		employees, err := wire.TimesheetService().ListEmployees(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		if len(employees) == 0 {
			fmt.Println("No employees found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSURNAME\tGIVEN NAME\tCONTRACT\tRATE")
		for _, e := range employees {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n", e.ID, e.Surname, e.GivenName, e.Contract, e.HourlyRate)
		}
		return w.Flush()
	},
}

var employeeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid employee id: %s", args[0])
		}

		emp, err := wire.TimesheetService().GetEmployee(context.Background(), id)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		fmt.Printf("Employee %d: %s %s\n", emp.ID, emp.Surname, emp.GivenName)
		fmt.Printf("  Contract: %s\n", emp.Contract.Label())
		fmt.Printf("  Rate: %.2f EUR/h\n", emp.HourlyRate)
		fmt.Printf("  Hired: %s\n", emp.HireDate)
		fmt.Printf("  Max daily hours: %.1fh\n", contract.MaxDailyHours(emp.Contract))
		fmt.Printf("  Legal annual limit: %dh over %d business days\n", contract.AnnualHourLimit, contract.BusinessDaysPerYear)
		if emp.Phone != "" {
			fmt.Printf("  Phone: %s\n", contact.FormatPhone(emp.Phone))
		}
		if emp.Email != "" {
			marker := ""
			if !contact.ValidEmail(emp.Email) {
				marker = " (invalid)"
			}
			fmt.Printf("  Email: %s%s\n", emp.Email, marker)
		}
		return nil
	},
}

// EmployeeCmd returns the employee command with all subcommands attached.
func EmployeeCmd() *cobra.Command {
	employeeAddCmd.Flags().Int("id", 0, "Employee ID")
	employeeAddCmd.Flags().String("phone", "", "Phone number")
	employeeAddCmd.Flags().String("email", "", "Email address")
	employeeAddCmd.Flags().String("hire-date", "", "Hire date (DD/MM/YYYY)")
	employeeAddCmd.Flags().String("contract", "CDI", "Contract type (CDI, CDD, Stage, Alternance, Freelance)")
	employeeAddCmd.Flags().Float64("rate", 0, "Hourly rate in EUR")
	employeeAddCmd.MarkFlagRequired("id")

	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeShowCmd)

	return employeeCmd
}
