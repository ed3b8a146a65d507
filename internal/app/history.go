package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oakwell-systems/larascan/internal/config"
	"github.com/oakwell-systems/larascan/internal/output"
	"github.com/oakwell-systems/larascan/internal/store"
)

var (
	historyFlagLimit int
	historyFlagJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously saved scan snapshots",
	Long: `History lists scan snapshots saved with 'larascan scan --save',
newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 10, "Maximum number of snapshots to show")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer func() { _ = db.Close() }()

	scans, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}

	if historyFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scans)
	}

	if len(scans) == 0 {
		fmt.Println(output.StyleMuted.Render("No snapshots saved yet. Run 'larascan scan --save' first."))
		return nil
	}

	fmt.Println(output.Section("Scan History"))
	fmt.Println()

	tbl := output.NewTable("Taken", "Root", "Apps", "Active")
	for _, s := range scans {
		active := s.ActivePath
		if active == "" {
			active = output.StyleMuted.Render("---")
		}
		tbl.AddRow(
			s.TakenAt.Local().Format(time.DateTime),
			s.Root,
			fmt.Sprintf("%d", s.AppCount),
			active,
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
