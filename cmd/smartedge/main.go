// Command smartedge routes the edges of a diagram around its nodes and renders
// the result as SVG.
//
// Usage:
//
//	smartedge route [file] [flags]
//
// The diagram is read from file, or from standard input if no file is given. See
// Diagram for its format.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("smartedge failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "smartedge",
		Short: "Route diagram edges around nodes",
		Long: `smartedge computes smooth edge paths that bend away from the nodes
they don't connect, and renders diagrams with those paths as SVG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRouteCmd())
	return root
}
