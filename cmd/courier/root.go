package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "courier",
	Short: "Courier - Telegram Bot API relay",
	Long: `Courier is a lightweight HTTP backend that relays REST calls to the
Telegram Bot API.

It exposes a small JSON surface for bot token validation, command listing,
and message sending, plus a generic relay for any Bot API method. Upstream
responses and errors are propagated verbatim, and every relay call is
recorded in an audit trail that never stores the raw bot token.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
