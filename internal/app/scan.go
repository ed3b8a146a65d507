package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwell-systems/larascan/internal/config"
	"github.com/oakwell-systems/larascan/internal/laravel"
	"github.com/oakwell-systems/larascan/internal/output"
	"github.com/oakwell-systems/larascan/internal/store"
)

var (
	scanFlagPath string
	scanFlagJSON bool
	scanFlagSave bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover Laravel applications and their environment",
	Long: `Scan walks the target directory looking for Laravel application roots,
resolves each application's framework version from composer metadata, and
checks whether Laravel Sail is installed and whether its containers are up.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlagPath, "path", ".", "Directory to scan")
	scanCmd.Flags().BoolVar(&scanFlagJSON, "json", false, "Output as JSON")
	scanCmd.Flags().BoolVar(&scanFlagSave, "save", false, "Save the result as a snapshot")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	scan, err := laravel.Run(cmd.Context(), scanFlagPath, cwd, laravel.Options{
		ExcludeDirs:  cfg.ExcludeDirs,
		SailPaths:    cfg.SailPaths,
		ProbeTimeout: cfg.ProbeTimeout,
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", scanFlagPath, err)
	}

	if scan == nil {
		if scanFlagJSON || flagJSON {
			fmt.Println("[]")
			return nil
		}
		fmt.Println(output.StyleMuted.Render("No Laravel applications found."))
		return nil
	}

	if scanFlagSave {
		if err := saveScan(scan); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}

	if scanFlagJSON || flagJSON {
		return renderScanJSON(scan)
	}
	renderScanTable(scan)
	return nil
}

func saveScan(scan *laravel.Scan) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	activePath := ""
	if scan.Active != nil {
		activePath = scan.Active.Path
	}

	scanID, err := db.InsertScan(scan.Root, activePath, appVersion, len(scan.Apps))
	if err != nil {
		return err
	}

	for _, app := range scan.Apps {
		row := &store.AppRow{
			ScanID:         scanID,
			Path:           app.Path,
			LaravelVersion: app.Version.String(),
			VersionKind:    app.Version.Kind.String(),
			HasSail:        app.HasSail,
			SailRunning:    app.SailRunning,
		}
		if err := db.InsertScanApp(row); err != nil {
			return err
		}
	}
	return nil
}

func renderScanJSON(scan *laravel.Scan) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(scan)
}

func renderScanTable(scan *laravel.Scan) {
	fmt.Println(output.Section("Laravel Applications"))
	fmt.Println()

	tbl := output.NewTable("Path", "Laravel", "Sail", "Containers", "Active")

	for i := range scan.Apps {
		app := &scan.Apps[i]

		sail := output.StyleMuted.Render("no")
		containers := output.StyleMuted.Render("---")
		if app.HasSail {
			sail = output.StyleSuccess.Render("yes")
			if app.SailRunning {
				containers = output.StyleSuccess.Render("up")
			} else {
				containers = output.StyleError.Render("down")
			}
		}

		active := ""
		if scan.Active != nil && scan.Active.Path == app.Path {
			active = output.StyleSuccess.Render("*")
		}

		tbl.AddRow(app.Path, app.Version.String(), sail, containers, active)
	}

	tbl.Print()

	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Applications:"),
		output.StyleValue.Render(fmt.Sprintf("%d", len(scan.Apps))))
	if scan.Active != nil {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Active:"),
			output.StyleValue.Render(scan.Active.Path))
	}
	fmt.Println()
}
