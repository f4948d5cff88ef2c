package cli

import (
	"context"
	"errors"
	"fmt"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/console"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/employee"

	"github.com/spf13/cobra"
)

func newLoginCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in with up to three attempts and open a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := console.NewPrompter(cmd.InOrStdin(), out)

			fmt.Fprintln(out, "=== EMPLOYEE AUTHENTICATION & LOGIN ===")

			src := auth.CredentialSourceFunc(func(context.Context, int) (auth.Credentials, error) {
				username, err := p.ReadLine("\nEnter Username: ")
				if err != nil {
					return auth.Credentials{}, err
				}
				password, err := p.ReadSecret("Enter Password: ")
				if err != nil {
					return auth.Credentials{}, err
				}
				return auth.Credentials{Username: username, Password: password}, nil
			})

			res, err := st.app.Auth.Login(ctx, src, func(_, remaining int) {
				fmt.Fprintf(out, "Login Failed. Attempts remaining: %d\n", remaining)
			})
			if err != nil {
				return err
			}

			if res.State == auth.StateLockedOut {
				fmt.Fprintf(out, "\nAccount temporarily locked due to %d failed attempts.\n", res.Attempts)
				return nil
			}

			session := res.Session
			title, actions := session.Role.Menu()
			fmt.Fprintln(out, "\nLogin Successful!")
			fmt.Fprintf(out, "Role: %s\n", session.Role)
			fmt.Fprintln(out, "\n======= DASHBOARD =======")
			fmt.Fprintln(out, title)
			fmt.Fprintln(out, actions)

			fmt.Fprintln(out, "\n"+session.String())
			_, err = st.app.Auth.CheckSession(ctx, session.ID)
			switch {
			case errors.Is(err, autherrors.ErrSessionExpired):
				fmt.Fprintln(out, "Session expired. Please login again.")
				return nil
			case err != nil:
				return err
			default:
				fmt.Fprintln(out, "Session active and valid.")
			}

			if d, ok := dashboard.Select(string(session.Role)); ok {
				emp := employee.NewEmployee("", session.Username, "", "")
				fmt.Fprint(out, d.Render(dashboard.DemoPayslips(), emp).String())
			}
			return nil
		},
	}
}
