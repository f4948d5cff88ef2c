package cli

import (
	"fmt"

	"go-payroll/internal/console"
	"go-payroll/internal/employee"
	"go-payroll/internal/validation"

	"github.com/spf13/cobra"
)

func newRegisterCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register an employee and their login account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "=== EMPLOYEE REGISTRATION ===")

			var req employee.RegisterEmployeeRequest
			fields := []struct {
				prompt string
				dst    *string
				secret bool
				check  func(string) (string, error)
			}{
				{"Enter Employee ID (EMP-XXXX): ", &req.EmpID, false, validation.ValidateEmployeeID},
				{"Enter Name: ", &req.Name, false, nil},
				{"Enter Email: ", &req.Email, false, validation.ValidateEmail},
				{"Enter Phone (10 digits starting 6-9): ", &req.Phone, false, validation.ValidatePhone},
				{"Create Username: ", &req.Username, false, nil},
				{"Create Password: ", &req.Password, true, nil},
			}
			for _, f := range fields {
				read := p.ReadLine
				if f.secret {
					read = p.ReadSecret
				}
				v, err := read(f.prompt)
				if err != nil {
					return err
				}
				if f.check != nil {
					if _, err := f.check(v); err != nil {
						msg, _ := userMessage(err)
						fmt.Fprintf(out, "\nValidation Failed: %s\n", msg)
						return nil
					}
				}
				*f.dst = v
			}

			resp, err := st.app.Employees.Register(cmd.Context(), req)
			if err != nil {
				msg, invalid := userMessage(err)
				if invalid {
					fmt.Fprintf(out, "\nValidation Failed: %s\n", msg)
					return nil
				}
				fmt.Fprintln(out, "\nError saving employee data!")
				return err
			}

			fmt.Fprintln(out, "\n----------------------------------")
			fmt.Fprintln(out, resp.Summary)
			fmt.Fprintf(out, "\nData persisted in file: %s\n", st.app.EmployeeRepo.Location())
			fmt.Fprintln(out, "----------------------------------")
			return nil
		},
	}
}
