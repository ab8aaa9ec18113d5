package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazynav-dev/lazynav/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬  ┌─┐┌─┐┬ ┬┌┐┌┌─┐┬  ┬
  │  ├─┤┌─┘└┬┘│││├─┤└┐┌┘
  ┴─┘┴ ┴└─┘ ┴ ┘└┘┴ ┴ └┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lazynav",
		Short: "Route-level code splitting for server-rendered navigation",
		Long: `lazynav serves a nested route tree where each route's render
code lives in a view module loaded on demand.

Navigating to a route starts its data fetch and its module load in the
same turn, so neither waits on the other. Loaded modules are cached for
the life of the process; pending regions render their fallbacks and the
server pushes the settled content over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
