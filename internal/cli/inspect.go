package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vinifborgess/auto-doc-pbi/internal/files/filesystem"
	"github.com/vinifborgess/auto-doc-pbi/internal/logging"
	"github.com/vinifborgess/auto-doc-pbi/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <template.pbit>",
	Short: "Summarize a template's data model without writing files",
	Long: `Inspect the data model embedded in a Power BI template and print a
summary to the console. Nothing is written to disk.

Useful for a quick structural review before generating documentation,
or in scripts with --json for machine-readable output.

Examples:
  # Human-readable summary
  pbidoc inspect finance.pbit

  # Machine-readable model dump
  pbidoc inspect finance.pbit --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Emit the model summary as JSON")
	rootCmd.AddCommand(inspectCmd)
}

// inspectSummary is the JSON shape emitted by --json.
type inspectSummary struct {
	Identity      string              `json:"identity"`
	Fingerprint   string              `json:"fingerprint"`
	Tables        []inspectTable      `json:"tables"`
	Relationships []inspectRel        `json:"relationships"`
	Diagnostics   []inspectDiagnostic `json:"diagnostics,omitempty"`
}

type inspectDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
}

type inspectTable struct {
	Name     string `json:"name"`
	Columns  int    `json:"columns"`
	Measures int    `json:"measures"`
}

type inspectRel struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Unresolved bool   `json:"unresolved,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := resolveOptions(cmd, inputPath)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(filesystem.NewOSFileSystem(), logging.NewConsoleLogger(opts.Verbose))
	result, err := runner.Run(inputPath)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return printInspectJSON(result)
	}

	printInspectSummary(result)
	printDiagnostics(result.Diagnostics)
	return nil
}

func printInspectJSON(result pipeline.Result) error {
	summary := inspectSummary{
		Identity:    result.Model.Identity.String(),
		Fingerprint: result.Model.Fingerprint,
	}
	for _, d := range result.Diagnostics {
		summary.Diagnostics = append(summary.Diagnostics, inspectDiagnostic{
			Severity: string(d.Severity),
			Message:  d.Message,
			Hint:     d.Hint,
		})
	}
	for _, t := range result.Model.Tables {
		summary.Tables = append(summary.Tables, inspectTable{
			Name:     t.Name,
			Columns:  len(t.Columns),
			Measures: len(t.Measures),
		})
	}
	for _, r := range result.Model.Relationships {
		summary.Relationships = append(summary.Relationships, inspectRel{
			From:       fmt.Sprintf("%s[%s]", r.From.Table, r.From.Column),
			To:         fmt.Sprintf("%s[%s]", r.To.Table, r.To.Column),
			Unresolved: r.From.Unresolved || r.To.Unresolved,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func printInspectSummary(result pipeline.Result) {
	m := result.Model

	fmt.Fprintln(os.Stderr, headingStyle.Render("Model summary"))
	fmt.Fprintf(os.Stderr, "  identity:    %s\n", m.Identity)
	fmt.Fprintf(os.Stderr, "  fingerprint: %s\n", m.Fingerprint)
	fmt.Fprintln(os.Stderr)

	if len(m.Tables) == 0 {
		fmt.Fprintln(os.Stderr, countStyle.Render("  no tables found"))
	}
	for _, t := range m.Tables {
		fmt.Fprintf(os.Stderr, "  %s %s\n",
			tableNameStyle.Render(t.Name),
			countStyle.Render(fmt.Sprintf("(%d columns, %d measures)", len(t.Columns), len(t.Measures))))
	}

	if len(m.Relationships) > 0 {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, headingStyle.Render("Relationships"))
		for _, r := range m.Relationships {
			line := fmt.Sprintf("  %s[%s] -> %s[%s]", r.From.Table, r.From.Column, r.To.Table, r.To.Column)
			if r.From.Unresolved || r.To.Unresolved {
				line += " " + unresolvedStyle.Render("(unresolved)")
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}
}
