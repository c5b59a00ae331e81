package render

import (
	"fmt"
	"strings"

	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// DocumentTitle is the first line of every rendered document.
const DocumentTitle = "# Power BI Model Documentation"

// Render walks the model and emits a Markdown document.
//
// Render is a total, deterministic function over any valid model:
// rendering the same model twice yields byte-identical output. Ordering
// follows the model's stored order — tables as built, and within a table
// columns, then measures, then the relationships involving that table.
func Render(m pbidoc.Model) string {
	var b strings.Builder

	b.WriteString(DocumentTitle + "\n\n")

	if len(m.Tables) == 0 {
		b.WriteString("_No tables found in the model schema._\n\n")
		writeFooter(&b, m)
		return b.String()
	}

	for _, table := range m.Tables {
		renderTable(&b, m, table)
	}

	writeFooter(&b, m)
	return b.String()
}

func renderTable(b *strings.Builder, m pbidoc.Model, table pbidoc.Table) {
	fmt.Fprintf(b, "## %s\n\n", table.Name)

	if table.Description != "" {
		fmt.Fprintf(b, "*Description*: %s\n\n", table.Description)
	}

	renderColumns(b, table.Columns)
	renderMeasures(b, table.Measures)
	renderRelationships(b, table.Name, m.RelationshipsInvolving(table.Name))
}

func renderColumns(b *strings.Builder, columns []pbidoc.Column) {
	b.WriteString("### Columns\n\n")
	if len(columns) == 0 {
		b.WriteString("_None defined._\n\n")
		return
	}

	b.WriteString("| Name | Type | Description | Hidden | Unique |\n")
	b.WriteString("|------|------|-------------|--------|--------|\n")
	for _, c := range columns {
		fmt.Fprintf(b, "| %s | %s | %s | %t | %t |\n",
			cell(c.Name), cell(string(c.Type)), cell(c.Description), c.Hidden, c.Unique)
	}
	b.WriteString("\n")
}

func renderMeasures(b *strings.Builder, measures []pbidoc.Measure) {
	b.WriteString("### Measures\n\n")
	if len(measures) == 0 {
		b.WriteString("_None defined._\n\n")
		return
	}

	for _, measure := range measures {
		// Multi-line DAX goes into a fenced block; single-line formulas
		// stay inline. The expression text itself is reproduced verbatim.
		if strings.ContainsAny(measure.Expression, "\n`") {
			fmt.Fprintf(b, "- **%s**:\n\n", measure.Name)
			fmt.Fprintf(b, "```\n%s\n```\n", measure.Expression)
		} else {
			fmt.Fprintf(b, "- **%s**: `%s`\n", measure.Name, measure.Expression)
		}
	}
	b.WriteString("\n")
}

func renderRelationships(b *strings.Builder, tableName string, rels []pbidoc.Relationship) {
	b.WriteString("### Relationships\n\n")
	if len(rels) == 0 {
		b.WriteString("_None defined._\n\n")
		return
	}

	b.WriteString("| From | To | Cardinality |\n")
	b.WriteString("|------|----|-------------|\n")
	for _, r := range rels {
		cardinality := r.Cardinality
		if cardinality == "" {
			cardinality = "unspecified"
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n",
			cell(endpoint(r.From)), cell(endpoint(r.To)), cell(cardinality))
	}
	b.WriteString("\n")
}

func endpoint(ep pbidoc.Endpoint) string {
	s := fmt.Sprintf("%s[%s]", ep.Table, ep.Column)
	if ep.Unresolved {
		s += " (unresolved)"
	}
	return s
}

func writeFooter(b *strings.Builder, m pbidoc.Model) {
	if m.Fingerprint == "" {
		return
	}
	b.WriteString("---\n\n")
	fmt.Fprintf(b, "_Schema fingerprint: `%s`_\n", m.Fingerprint)
}

// cell sanitizes free text for a Markdown table cell: pipes are escaped
// and newlines collapse to spaces so a description cannot break the row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
