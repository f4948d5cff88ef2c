package cli

import (
	"fmt"

	"go-payroll/internal/console"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"

	"github.com/spf13/cobra"
)

func newDashboardCmd(_ *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for a role over sample payslips",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "=== DASHBOARD DISPLAY ===")

			id, err := p.ReadLine("Enter Employee ID: ")
			if err != nil {
				return err
			}
			name, err := p.ReadLine("Enter Employee Name: ")
			if err != nil {
				return err
			}
			role, err := p.ReadLine("Enter Role (EMPLOYEE/MANAGER): ")
			if err != nil {
				return err
			}

			d, ok := dashboard.Select(role)
			if !ok {
				fmt.Fprintln(out, "Invalid Role")
				return nil
			}

			emp := employee.NewEmployee(id, name, "", "")
			fmt.Fprint(out, d.Render(dashboard.DemoPayslips(), emp).String())
			return nil
		},
	}
}
