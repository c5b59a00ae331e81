package schema

import (
	"encoding/json"
	"fmt"

	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// RawColumn is a column node as declared in the source, before any
// normalization. DataType carries the source token verbatim.
type RawColumn struct {
	Name        string
	DataType    string
	Description string
	Hidden      bool
	Unique      bool
}

// RawMeasure is a measure node with its formula text untouched.
type RawMeasure struct {
	Name       string
	Expression string
}

// RawTable is a table node in source order, with its columns and
// measures in source order.
type RawTable struct {
	Name        string
	Description string
	Columns     []RawColumn
	Measures    []RawMeasure
}

// RawRelationship is a relationship node. Endpoints are carried as
// declared; resolution against the built model happens later.
type RawRelationship struct {
	FromTable   string
	FromColumn  string
	ToTable     string
	ToColumn    string
	Cardinality string
}

// RawEntities is the subset of the parse tree the pipeline cares about.
type RawEntities struct {
	Tables        []RawTable
	Relationships []RawRelationship
}

// LocateEntities walks the tree for the nodes representing tables,
// columns, relationships, and measures under the fixed shape
// model.tables[] / model.relationships[].
//
// The walk is tolerant: a missing substructure yields an empty collection
// plus a warning diagnostic, a node of the wrong shape is skipped with a
// warning, and unknown extra fields are ignored. It never fails.
func LocateEntities(tree Tree) (RawEntities, []pbidoc.Diagnostic) {
	var entities RawEntities
	var diags []pbidoc.Diagnostic

	warn := func(format string, args ...any) {
		diags = append(diags, pbidoc.Diagnostic{
			Severity: pbidoc.SeverityWarning,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	model, ok := tree["model"].(map[string]any)
	if !ok {
		warn("schema document has no \"model\" object; nothing to document")
		return entities, diags
	}

	tables, present := asList(model, "tables")
	if !present {
		warn("model declares no \"tables\" section")
	}
	for i, node := range tables {
		table, ok := node.(map[string]any)
		if !ok {
			warn("tables[%d] is not an object; skipped", i)
			continue
		}
		name := stringField(table, "name")
		if name == "" {
			warn("tables[%d] has no name; skipped", i)
			continue
		}
		entities.Tables = append(entities.Tables, RawTable{
			Name:        name,
			Description: stringField(table, "description"),
			Columns:     locateColumns(table, name, warn),
			Measures:    locateMeasures(table, name, warn),
		})
	}

	rels, present := asList(model, "relationships")
	if !present {
		warn("model declares no \"relationships\" section")
	}
	for i, node := range rels {
		rel, ok := node.(map[string]any)
		if !ok {
			warn("relationships[%d] is not an object; skipped", i)
			continue
		}
		entities.Relationships = append(entities.Relationships, RawRelationship{
			FromTable:   stringField(rel, "fromTable"),
			FromColumn:  stringField(rel, "fromColumn"),
			ToTable:     stringField(rel, "toTable"),
			ToColumn:    stringField(rel, "toColumn"),
			Cardinality: stringField(rel, "cardinality"),
		})
	}

	return entities, diags
}

func locateColumns(table map[string]any, tableName string, warn func(string, ...any)) []RawColumn {
	nodes, present := asList(table, "columns")
	if !present {
		// Legitimately absent on calculated or empty tables; no warning.
		return nil
	}
	var cols []RawColumn
	for i, node := range nodes {
		col, ok := node.(map[string]any)
		if !ok {
			warn("table %q: columns[%d] is not an object; skipped", tableName, i)
			continue
		}
		name := stringField(col, "name")
		if name == "" {
			warn("table %q: columns[%d] has no name; skipped", tableName, i)
			continue
		}
		cols = append(cols, RawColumn{
			Name:        name,
			DataType:    stringField(col, "dataType"),
			Description: stringField(col, "description"),
			Hidden:      boolField(col, "isHidden"),
			Unique:      boolField(col, "isUnique"),
		})
	}
	return cols
}

func locateMeasures(table map[string]any, tableName string, warn func(string, ...any)) []RawMeasure {
	nodes, present := asList(table, "measures")
	if !present {
		return nil
	}
	var measures []RawMeasure
	for i, node := range nodes {
		m, ok := node.(map[string]any)
		if !ok {
			warn("table %q: measures[%d] is not an object; skipped", tableName, i)
			continue
		}
		name := stringField(m, "name")
		if name == "" {
			warn("table %q: measures[%d] has no name; skipped", tableName, i)
			continue
		}
		measures = append(measures, RawMeasure{
			Name:       name,
			Expression: expressionField(m),
		})
	}
	return measures
}

// expressionField returns the measure expression verbatim. The source
// writes it either as a string or as an array of lines; the array form is
// rejoined with newlines, which is how the authoring tool displays it.
func expressionField(m map[string]any) string {
	switch v := m["expression"].(type) {
	case string:
		return v
	case []any:
		out := ""
		for i, line := range v {
			s, ok := line.(string)
			if !ok {
				continue
			}
			if i > 0 {
				out += "\n"
			}
			out += s
		}
		return out
	default:
		return ""
	}
}

func asList(node map[string]any, key string) ([]any, bool) {
	v, ok := node[key]
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return list, true
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func boolField(node map[string]any, key string) bool {
	switch v := node[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	case json.Number:
		return v.String() != "0"
	default:
		return false
	}
}
