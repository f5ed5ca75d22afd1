package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/awantoch/beemchart/constants"
	beemhttp "github.com/awantoch/beemchart/http"
	"github.com/awantoch/beemchart/telemetry"
	"github.com/awantoch/beemchart/utils"
)

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   constants.CmdServe,
		Short: constants.DescServe,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdown, err := telemetry.Init(ctx, cfg)
			if err != nil {
				utils.Error("Failed to initialize tracing: %v", err)
				exit(1)
				return
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					utils.Warn("tracing shutdown: %v", err)
				}
			}()

			if err := beemhttp.StartServer(ctx, cfg); err != nil {
				utils.Error("Server error: %v", err)
				exit(1)
			}
		},
	}
}
