package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vinifborgess/auto-doc-pbi/internal/files/filesystem"
	"github.com/vinifborgess/auto-doc-pbi/internal/logging"
	"github.com/vinifborgess/auto-doc-pbi/internal/pipeline"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

var documentCmd = &cobra.Command{
	Use:   "document <template.pbit>",
	Short: "Generate Markdown documentation for a template's data model",
	Long: `Generate Markdown documentation for the data model embedded in a
Power BI template (.pbit).

The template's DataModelSchema member is extracted, decoded, and walked
for tables, columns, relationships, and measures. The resulting document
is written next to the working directory unless --output points
elsewhere.

Recoverable issues (duplicate names, unresolved relationship endpoints,
unrecognized data types, missing optional sections) do not abort the
run; they are listed after the document is written.

Examples:
  # Write pbi_documentation.md in the current directory
  pbidoc document ./reports/finance.pbit

  # Choose the output file
  pbidoc document finance.pbit --output docs/finance-model.md

  # Print the document to stdout instead of writing a file
  pbidoc document finance.pbit --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

func init() {
	documentCmd.Flags().StringP("output", "o", "", "Output file path (default "+pbidoc.DefaultOutputFileName+")")
	documentCmd.Flags().Bool("stdout", false, "Print the document to stdout instead of writing a file")
	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := resolveOptions(cmd, inputPath)
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLogger(opts.Verbose)

	fsProvider := filesystem.NewOSFileSystem()
	runner := pipeline.NewRunner(fsProvider, logger)

	result, err := runner.Run(inputPath)
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		fmt.Fprint(os.Stdout, result.Document)
	} else {
		if err := fsProvider.WriteFile(opts.Output, []byte(result.Document)); err != nil {
			return fmt.Errorf("%w: %s: %v", pbidoc.ErrOutputWrite, opts.Output, err)
		}
		logger.Info("Documentation written to %s", opts.Output)
	}

	printDiagnostics(result.Diagnostics)
	return nil
}

// printDiagnostics lists recoverable issues on stderr, styled by severity.
func printDiagnostics(diags []pbidoc.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, headingStyle.Render(fmt.Sprintf("%d diagnostic(s):", len(diags))))
	for i, d := range diags {
		style := warningStyle
		if d.Severity == pbidoc.SeverityRecoverableError {
			style = errorStyle
		}
		fmt.Fprintf(os.Stderr, "  %d. %s %s\n", i+1, style.Render("["+string(d.Severity)+"]"), d.Message)
		if d.Hint != "" {
			fmt.Fprintf(os.Stderr, "     %s\n", countStyle.Render("hint: "+d.Hint))
		}
	}
}
