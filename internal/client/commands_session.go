package client

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/appybrain-client/internal/service"
	"github.com/MKhiriev/appybrain-client/internal/workers"
)

// annotationNoRuntime marks commands that run without config or session.
const annotationNoRuntime = "no-runtime"

func (a *App) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Validate the session periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ws := workers.NewWorkers()
			ws.Add(a.rt.services.SessionWatch)
			ws.Run()
			defer ws.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "watching session every %s\n", a.rt.cfg.Workers.SessionCheckInterval)

			select {
			case <-ctx.Done():
				return nil
			case <-a.rt.invalidated:
				fmt.Fprintln(cmd.OutOrStdout(), "session invalidated by the server")
				return service.ErrSessionExpired
			}
		},
	}
}

func (a *App) newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop the session and wipe the local session store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.rt.client.ClearSession(cmd.Context())
			if err := a.rt.kv.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear session store: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "local session store cleared")
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoRuntime: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())
			return nil
		},
	}
}
