package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwell-systems/larascan/internal/config"
	"github.com/oakwell-systems/larascan/internal/hook"
	"github.com/oakwell-systems/larascan/internal/laravel"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as a Claude Code hook",
	Long: `Hook subcommands are wired into Claude Code's hook configuration and
communicate over stdout. They never fail: any error results in no output
and a zero exit code, so a broken scan can never block a session.`,
}

var hookSessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Emit Laravel environment context for a starting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return nil
		}
		return emitSessionStart(cmd.Context(), os.Stdout, flagConfig, cwd)
	},
}

// emitSessionStart scans the working directory for Laravel applications and
// writes the SessionStart payload to w. It always returns nil: hooks must
// never block the session, so every failure path degrades to silence.
func emitSessionStart(ctx context.Context, w io.Writer, cfgFile, cwd string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil
	}

	scan, err := laravel.Run(ctx, cwd, cwd, laravel.Options{
		ExcludeDirs:  cfg.ExcludeDirs,
		SailPaths:    cfg.SailPaths,
		ProbeTimeout: cfg.ProbeTimeout,
	})
	if err != nil || scan == nil {
		return nil
	}

	onboarding := hook.LoadOnboarding(cfg.OnboardingDoc)
	additional := hook.BuildContext(scan, onboarding)
	_ = hook.Emit(w, hook.EventSessionStart, additional)
	return nil
}

func init() {
	hookCmd.AddCommand(hookSessionStartCmd)
	rootCmd.AddCommand(hookCmd)
}
