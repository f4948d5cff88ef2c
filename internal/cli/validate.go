package cli

import (
	"fmt"

	"go-payroll/internal/console"
	"go-payroll/internal/validation"

	"github.com/spf13/cobra"
)

var validatePrompts = map[validation.Kind]string{
	validation.KindEmployeeID: "Enter Employee ID (EMP-XXXX): ",
	validation.KindEmail:      "Enter Email: ",
	validation.KindPhone:      "Enter Phone Number: ",
	validation.KindPassword:   "Create Password: ",
}

func newValidateCmd(_ *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check registration inputs one by one and stop at the first invalid one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "=== INPUT VALIDATION ===")

			for _, kind := range validation.FormKinds {
				read := p.ReadLine
				if kind == validation.KindPassword {
					read = p.ReadSecret
				}
				raw, err := read(validatePrompts[kind])
				if err != nil {
					return err
				}
				if _, err := validation.Validate(kind, raw); err != nil {
					msg, _ := userMessage(err)
					fmt.Fprintln(out, "\nValidation Failed:")
					fmt.Fprintln(out, msg)
					return nil
				}
			}

			fmt.Fprintln(out, "\nAll inputs are VALID. Registration/Login can proceed.")
			return nil
		},
	}
}
