package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd assembles the CLI. Flags live on the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cafe-admin",
		Short: "Café admin dashboard service",
		Long: `Backend for the café admin dashboard: menu, orders, reservations,
support tickets and customer feedback, with live dashboard statistics.

Configuration is read from .env, an optional YAML file named by CONFIG_FILE,
and environment variables, in that order.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Debug logging")

	root.AddCommand(newServeCmd(), newStatsCmd(), newTransitionsCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
