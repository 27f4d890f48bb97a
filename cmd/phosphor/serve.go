package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ForestKatsch/phosphor/app"
	"github.com/ForestKatsch/phosphor/core/config"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Start the HTTP server and block until SIGINT or SIGTERM, then shut down gracefully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(addr)
			if err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides SERVER_ADDR)")

	return cmd
}

// newApp loads the environment config and applies the address override.
func newApp(addr string) (*app.App, error) {
	var cfg app.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	return app.NewApp(app.WithConfig(cfg))
}
