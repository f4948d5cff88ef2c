// Package cli is the interactive command line for the payroll use cases.
package cli

import (
	"context"
	"net/http"

	"go-payroll/internal/app"
	"go-payroll/internal/shared/apperror"

	"github.com/spf13/cobra"
)

// Builder wires the application for one command run.
type Builder func(ctx context.Context) (*app.App, error)

type state struct {
	build Builder
	app   *app.App
}

// NewRootCommand returns the payroll command tree. A fresh tree is created
// for each call so tests stay isolated.
func NewRootCommand(build Builder) *cobra.Command {
	st := &state{build: build}

	cmd := &cobra.Command{
		Use:           "payroll",
		Short:         "Employee payroll: registration, login, payslips and dashboards",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := st.build(cmd.Context())
			if err != nil {
				return err
			}
			st.app = a
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if st.app == nil {
				return nil
			}
			return st.app.Close()
		},
	}

	cmd.AddCommand(
		newRegisterCmd(st),
		newLoginCmd(st),
		newPayslipCmd(st),
		newDownloadCmd(st),
		newDashboardCmd(st),
		newValidateCmd(st),
		newServeCmd(st),
	)
	return cmd
}

// userMessage is the text shown for a failed operation, and whether the
// failure was the user's input.
func userMessage(err error) (string, bool) {
	httpErr := apperror.ToHTTP(err)
	return httpErr.Message, httpErr.Status >= http.StatusBadRequest && httpErr.Status < http.StatusInternalServerError
}
