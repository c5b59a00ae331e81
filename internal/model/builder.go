package model

import (
	"fmt"

	"github.com/vinifborgess/auto-doc-pbi/internal/schema"
	"github.com/vinifborgess/auto-doc-pbi/pkg/pbidoc"
)

// dataTypes maps the source's declared type tokens to the fixed
// enumeration. Tokens are the TMSL names the authoring tool emits.
var dataTypes = map[string]pbidoc.DataType{
	"string":   pbidoc.DataTypeString,
	"int64":    pbidoc.DataTypeInt64,
	"double":   pbidoc.DataTypeDouble,
	"decimal":  pbidoc.DataTypeDecimal,
	"dateTime": pbidoc.DataTypeDateTime,
	"boolean":  pbidoc.DataTypeBoolean,
	"binary":   pbidoc.DataTypeBinary,
	"variant":  pbidoc.DataTypeVariant,
}

// Build assembles located entities into a normalized model.
//
// Normalization is deterministic: tables in source order, columns and
// measures within a table in source order. Duplicate names merge into the
// first declaration with a warning diagnostic; unrecognized data types
// fall back to DataTypeOther with a warning; relationship endpoints are
// resolved after all tables are built so forward references work, and
// unresolved endpoints are flagged and warned, never discarded.
//
// Build never fails. It always returns a model (possibly empty) plus the
// accumulated diagnostics.
func Build(raw schema.RawEntities) (pbidoc.Model, []pbidoc.Diagnostic) {
	b := &builder{
		tableIndex: make(map[string]int),
	}

	for _, t := range raw.Tables {
		b.addTable(t)
	}
	for _, r := range raw.Relationships {
		b.addRelationship(r)
	}

	return pbidoc.Model{
		Tables:        b.tables,
		Relationships: b.relationships,
	}, b.diags
}

type builder struct {
	tables        []pbidoc.Table
	tableIndex    map[string]int
	relationships []pbidoc.Relationship
	diags         []pbidoc.Diagnostic
}

func (b *builder) warn(format string, args ...any) {
	b.diags = append(b.diags, pbidoc.Diagnostic{
		Severity: pbidoc.SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

// addTable appends a new table or merges a duplicate declaration into
// the first occurrence.
func (b *builder) addTable(raw schema.RawTable) {
	idx, exists := b.tableIndex[raw.Name]
	if !exists {
		b.tableIndex[raw.Name] = len(b.tables)
		b.tables = append(b.tables, pbidoc.Table{
			Name:        raw.Name,
			Description: raw.Description,
		})
		idx = len(b.tables) - 1
	} else {
		b.warn("duplicate table %q: merging into the first declaration", raw.Name)
	}

	table := &b.tables[idx]
	if table.Description == "" {
		table.Description = raw.Description
	}
	for _, c := range raw.Columns {
		b.addColumn(table, c)
	}
	for _, m := range raw.Measures {
		b.addMeasure(table, m)
	}
}

func (b *builder) addColumn(table *pbidoc.Table, raw schema.RawColumn) {
	for i := range table.Columns {
		if table.Columns[i].Name != raw.Name {
			continue
		}
		b.warn("table %q: duplicate column %q: merging into the first declaration", table.Name, raw.Name)
		existing := &table.Columns[i]
		if existing.Description == "" {
			existing.Description = raw.Description
		}
		if existing.Type == pbidoc.DataTypeOther {
			existing.Type = b.normalizeType(table.Name, raw)
		}
		existing.Hidden = existing.Hidden || raw.Hidden
		existing.Unique = existing.Unique || raw.Unique
		return
	}

	table.Columns = append(table.Columns, pbidoc.Column{
		Name:        raw.Name,
		Type:        b.normalizeType(table.Name, raw),
		Description: raw.Description,
		Hidden:      raw.Hidden,
		Unique:      raw.Unique,
	})
}

func (b *builder) addMeasure(table *pbidoc.Table, raw schema.RawMeasure) {
	for i := range table.Measures {
		if table.Measures[i].Name != raw.Name {
			continue
		}
		b.warn("table %q: duplicate measure %q: merging into the first declaration", table.Name, raw.Name)
		if table.Measures[i].Expression == "" {
			table.Measures[i].Expression = raw.Expression
		}
		return
	}

	table.Measures = append(table.Measures, pbidoc.Measure{
		Name:       raw.Name,
		Expression: raw.Expression,
	})
}

func (b *builder) normalizeType(tableName string, raw schema.RawColumn) pbidoc.DataType {
	if raw.DataType == "" {
		b.warn("table %q: column %q declares no data type", tableName, raw.Name)
		return pbidoc.DataTypeOther
	}
	if dt, ok := dataTypes[raw.DataType]; ok {
		return dt
	}
	b.warn("table %q: column %q has unrecognized data type %q", tableName, raw.Name, raw.DataType)
	return pbidoc.DataTypeOther
}

// addRelationship resolves both endpoints against the tables built so
// far (all of them, since relationships are added last) and retains the
// relationship regardless of resolution.
func (b *builder) addRelationship(raw schema.RawRelationship) {
	from := b.resolveEndpoint(raw.FromTable, raw.FromColumn)
	to := b.resolveEndpoint(raw.ToTable, raw.ToColumn)

	b.relationships = append(b.relationships, pbidoc.Relationship{
		From:        from,
		To:          to,
		Cardinality: raw.Cardinality,
	})
}

func (b *builder) resolveEndpoint(tableName, columnName string) pbidoc.Endpoint {
	ep := pbidoc.Endpoint{Table: tableName, Column: columnName}

	idx, ok := b.tableIndex[tableName]
	if !ok {
		ep.Unresolved = true
		b.warn("relationship references unknown table %q", tableName)
		return ep
	}
	for _, c := range b.tables[idx].Columns {
		if c.Name == columnName {
			return ep
		}
	}
	ep.Unresolved = true
	b.warn("relationship references unknown column %q in table %q", columnName, tableName)
	return ep
}
