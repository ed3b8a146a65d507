// Package app contains the Cobra command tree for larascan.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwell-systems/larascan/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "larascan",
	Short: "Laravel repository scanner and environment classifier",
	Long: `larascan discovers Laravel applications inside a repository, resolves
their framework versions from composer metadata, and reports whether Laravel
Sail is installed and whether its containers are currently running.

It also ships a Claude Code SessionStart hook that injects the detected
environment into the session context.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.AutoDetect()
		if flagNoColor {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("larascan", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan      Discover Laravel applications and their environment")
		fmt.Println("  history   Show previously saved scan snapshots")
		fmt.Println("  validate  Validate a Claude Code plugin bundle")
		fmt.Println("  hook      Run as a Claude Code hook")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/larascan/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
