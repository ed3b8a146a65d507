package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwell-systems/larascan/internal/output"
	"github.com/oakwell-systems/larascan/internal/plugin"
)

var validateFlagJSON bool

// validateConcurrency bounds the number of bundle files checked in parallel.
const validateConcurrency = 8

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a Claude Code plugin bundle",
	Long: `Validate checks a plugin bundle directory for a well-formed
.claude-plugin/plugin.json manifest and valid frontmatter in every skill
and command file. Exits non-zero when issues are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	issues, err := plugin.ValidateBundle(cmd.Context(), dir, validateConcurrency)
	if err != nil {
		return fmt.Errorf("validating %s: %w", dir, err)
	}

	if validateFlagJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		fmt.Println(output.StyleSuccess.Render("Bundle is valid."))
	} else {
		for _, issue := range issues {
			fmt.Printf(" %s  %s\n",
				output.StyleError.Render(issue.File),
				issue.Message)
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d issue(s) found", len(issues))
	}
	return nil
}
