package cli

import (
	"go-payroll/internal/bootstrap"

	"github.com/spf13/cobra"
)

func newServeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the payroll HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := st.app
			router, err := a.Router()
			if err != nil {
				return err
			}

			srv := a.Config.Server
			return bootstrap.StartHTTPServer(cmd.Context(), router, bootstrap.ServerConfig{
				Port:            srv.Port,
				ReadTimeout:     srv.ReadTimeout,
				WriteTimeout:    srv.WriteTimeout,
				IdleTimeout:     srv.IdleTimeout,
				ShutdownTimeout: srv.ShutdownTimeout,
			}, a.Audit)
		},
	}
}
