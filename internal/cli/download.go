package cli

import (
	"errors"
	"fmt"

	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/spf13/cobra"
)

const (
	demoEmpID   = "EMP-1010"
	demoEmpName = "John David"
	demoMonth   = "January 2026"
	demoNetPay  = 48500.00
)

func newDownloadCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Print and download a copy of an issued payslip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			a := st.app

			fmt.Fprintln(out, "=== PAYSLIP PRINT / DOWNLOAD ===")

			emp := employee.NewEmployee(demoEmpID, demoEmpName, "", "")
			original := payroll.NewIssuedPayslip(&emp, demoMonth, demoNetPay)

			fmt.Fprintln(out, "\nOriginal Payslip:")
			fmt.Fprintln(out, original.String())

			copied := original.Clone()
			if original.Equal(copied) {
				fmt.Fprintln(out, "Verified: Download copy is equal to original.")
			}
			fmt.Fprintf(out, "Original key : %s/%s\n", original.Key().EmpID, original.Key().Month)
			fmt.Fprintf(out, "Cloned   key : %s/%s\n", copied.Key().EmpID, copied.Key().Month)

			token := payroll.NewDownloadToken(a.Clock.Now(), a.Config.Download.TokenTTL)
			res, err := a.Downloads.Download(cmd.Context(), original, token)
			switch {
			case errors.Is(err, payrollerrors.ErrDownloadExpired):
				fmt.Fprintln(out, "Download link expired.")
				return nil
			case err != nil:
				msg, _ := userMessage(err)
				fmt.Fprintln(out, msg)
				return nil
			}

			fmt.Fprintln(out, "\nPayslip Download Successful.")
			fmt.Fprintf(out, "Saved as text file: %s\n", res.TextPath)
			fmt.Fprintf(out, "Saved as PDF file : %s\n", res.PDFPath)

			fmt.Fprintln(out, "\n--- Printed Payslip ---")
			fmt.Fprintln(out, res.Copy.String())
			return nil
		},
	}
}

