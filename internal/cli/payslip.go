package cli

import (
	"fmt"

	"go-payroll/internal/console"
	"go-payroll/internal/employee"

	"github.com/spf13/cobra"
)

func newPayslipCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "payslip",
		Short: "Compute a payslip from monthly earnings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "=== PAYSLIP GENERATION ===")

			id, err := p.ReadLine("Enter Employee ID: ")
			if err != nil {
				return err
			}
			name, err := p.ReadLine("Enter Employee Name: ")
			if err != nil {
				return err
			}
			month, err := p.ReadLine("Enter Month (e.g., January 2026): ")
			if err != nil {
				return err
			}

			var amounts [4]float64
			for i, prompt := range []string{"Enter Basic Salary: ", "Enter HRA: ", "Enter DA: ", "Enter Allowances: "} {
				if amounts[i], err = console.ReadFloat(p, out, prompt); err != nil {
					return err
				}
			}

			emp := employee.NewEmployee(id, name, "", "")
			slip, err := st.app.Calculator.ComputePayslip(&emp, month, amounts[0], amounts[1], amounts[2], amounts[3])
			if err != nil {
				msg, _ := userMessage(err)
				fmt.Fprintf(out, "\nInvalid payslip input: %s\n", msg)
				return nil
			}

			fmt.Fprintln(out, slip.String())
			return nil
		},
	}
}
