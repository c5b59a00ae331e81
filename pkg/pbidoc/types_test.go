package pbidoc

import (
	"testing"
)

func TestModel_TableNames(t *testing.T) {
	m := Model{Tables: []Table{{Name: "Sales"}, {Name: "Region"}}}

	names := m.TableNames()
	if len(names) != 2 || names[0] != "Sales" || names[1] != "Region" {
		t.Errorf("Expected [Sales Region], got %v", names)
	}
}

func TestModel_TableNames_Empty(t *testing.T) {
	var m Model
	if names := m.TableNames(); len(names) != 0 {
		t.Errorf("Expected no names, got %v", names)
	}
}

func TestModel_RelationshipsInvolving(t *testing.T) {
	m := Model{
		Relationships: []Relationship{
			{From: Endpoint{Table: "Sales", Column: "RegionID"}, To: Endpoint{Table: "Region", Column: "ID"}},
			{From: Endpoint{Table: "Orders", Column: "CustID"}, To: Endpoint{Table: "Customer", Column: "ID"}},
		},
	}

	sales := m.RelationshipsInvolving("Sales")
	if len(sales) != 1 || sales[0].To.Table != "Region" {
		t.Errorf("Expected the Sales-Region relationship, got %v", sales)
	}

	region := m.RelationshipsInvolving("Region")
	if len(region) != 1 {
		t.Errorf("Relationship should be visible from both endpoints, got %v", region)
	}

	if none := m.RelationshipsInvolving("Ghost"); len(none) != 0 {
		t.Errorf("Expected no relationships for unknown table, got %v", none)
	}
}

func TestSeverityValues(t *testing.T) {
	if SeverityWarning == SeverityRecoverableError {
		t.Error("Severity values must be distinct")
	}
}
