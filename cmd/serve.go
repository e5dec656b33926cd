package cmd

import (
	"github.com/spf13/cobra"

	"github.com/locey/BurnWin/api/router"
	"github.com/locey/BurnWin/app"
	"github.com/locey/BurnWin/service/svc"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the verification API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			serverCtx, err := svc.NewServiceContext(cmd.Context(), c)
			if err != nil {
				return err
			}
			r := router.NewRouter(serverCtx)
			platform, err := app.NewPlatform(c, r, serverCtx)
			if err != nil {
				serverCtx.Close()
				return err
			}
			return platform.Start(cmd.Context())
		},
	}
}
