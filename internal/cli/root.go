package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
       _     _     _
 _ __ | |__ (_) __| | ___   ___
| '_ \| '_ \| |/ _' |/ _ \ / __|
| |_) | |_) | | (_| | (_) | (__
| .__/|_.__/|_|\__,_|\___/ \___|
|_|`

var rootCmd = &cobra.Command{
	Use:   "pbidoc",
	Short: "Power BI template model documentation generator",
	Long: asciiLogo + `

pbidoc extracts the data-model schema embedded in a Power BI template
(.pbit) and renders it as Markdown documentation: tables, columns,
relationships, and calculated measures with their DAX reproduced
verbatim. Nothing is evaluated and no authoring tool is required.

Partial or quirky schemas are documented as far as they go; every
recoverable issue is reported as a diagnostic instead of aborting.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Input is not an archive or lacks the schema member
  21 - Schema payload failed every candidate encoding
  22 - Schema payload is not well-formed JSON
  23 - Output document could not be written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pbidoc")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
