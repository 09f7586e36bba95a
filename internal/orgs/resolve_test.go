// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orgs

import (
	"testing"

	"github.com/pdiddy/attribution-engine/pkg/types"
)

func testMapping() types.FacultyMapping {
	return types.FacultyMapping{
		Mapping: map[string]string{
			"Faculty of Science and Technology": "tnw",
			"Faculty of Electrical Engineering, Mathematics and Computer Science": "eemcs",
			"Digital Society Institute": "dsi",
		},
		Codes:         []string{"tnw", "eemcs", "bms", "dsi"},
		InstitutionID: "inst-root",
	}
}

func TestResolveHierarchy(t *testing.T) {
	orgs := []types.Organization{
		{ID: "inst-root", Name: "University of Twente"},
		{ID: "fac-1", Name: "Faculty of Science and Technology", PartOf: "inst-root"},
		{ID: "dep-1", Name: "Applied Physics", PartOf: "fac-1"},
		{ID: "grp-1", Name: "Quantum Devices", PartOf: "dep-1"},
		{ID: "orphan", Name: "Detached Unit", PartOf: "gone"},
		{ID: "plain", Name: "Library", PartOf: "inst-root"},
	}

	resolved := ResolveHierarchy(orgs, testMapping())

	if len(resolved) != len(orgs) {
		t.Fatalf("len(resolved) = %d, want %d", len(resolved), len(orgs))
	}
	byID := map[string]types.ResolvedOrg{}
	for _, ro := range resolved {
		byID[ro.ID] = ro
	}

	tests := []struct {
		id         string
		wantCode   string
		wantStatus types.ResolutionStatus
	}{
		{"fac-1", "tnw", types.ResolutionKnown},
		{"dep-1", "tnw", types.ResolutionKnown},
		{"grp-1", "tnw", types.ResolutionKnown},
		{"inst-root", "", types.ResolutionUnresolved},
		{"orphan", "", types.ResolutionUnresolved},
		{"plain", "", types.ResolutionUnresolved},
	}
	for _, tt := range tests {
		ro := byID[tt.id]
		if ro.FacultyCode != tt.wantCode {
			t.Errorf("%s: code = %q, want %q", tt.id, ro.FacultyCode, tt.wantCode)
		}
		if ro.Status != tt.wantStatus {
			t.Errorf("%s: status = %q, want %q", tt.id, ro.Status, tt.wantStatus)
		}
	}

	// The walk records ancestors leaf first, all the way to the root.
	grp := byID["grp-1"]
	want := []string{"grp-1", "dep-1", "fac-1", "inst-root"}
	if len(grp.Ancestors) != len(want) {
		t.Fatalf("grp-1 ancestors = %v, want %v", grp.Ancestors, want)
	}
	for i, id := range want {
		if grp.Ancestors[i] != id {
			t.Errorf("grp-1 ancestors[%d] = %q, want %q", i, grp.Ancestors[i], id)
		}
	}
}

// Closest matching ancestor wins: an institute inside a faculty resolves
// to the institute code, not the faculty's.
func TestResolveHierarchyClosestAncestorWins(t *testing.T) {
	orgs := []types.Organization{
		{ID: "fac-1", Name: "Faculty of Science and Technology"},
		{ID: "inst-1", Name: "Digital Society Institute", PartOf: "fac-1"},
		{ID: "grp-1", Name: "Data Group", PartOf: "inst-1"},
	}

	resolved := ResolveHierarchy(orgs, testMapping())

	if resolved[2].FacultyCode != "dsi" {
		t.Errorf("grp-1 code = %q, want dsi (closest ancestor)", resolved[2].FacultyCode)
	}
}

// Units below the matching ancestor are classified by depth: the one
// directly under the faculty is the department, anything deeper a group.
func TestResolveHierarchySubUnitClassification(t *testing.T) {
	orgs := []types.Organization{
		{ID: "fac-1", Name: "Faculty of Science and Technology"},
		{ID: "dep-1", Name: "Applied Physics", PartOf: "fac-1"},
		{ID: "grp-1", Name: "Quantum Devices", PartOf: "dep-1"},
	}

	resolved := ResolveHierarchy(orgs, testMapping())
	byID := map[string]types.ResolvedOrg{}
	for _, ro := range resolved {
		byID[ro.ID] = ro
	}

	fac := byID["fac-1"]
	if fac.Department != "" || len(fac.Groups) != 0 {
		t.Errorf("fac-1 should have no sub-units, got dept %q groups %v", fac.Department, fac.Groups)
	}
	dep := byID["dep-1"]
	if dep.Department != "Applied Physics" || len(dep.Groups) != 0 {
		t.Errorf("dep-1 = dept %q groups %v, want [Applied Physics] []", dep.Department, dep.Groups)
	}
	grp := byID["grp-1"]
	if grp.Department != "Applied Physics" {
		t.Errorf("grp-1 department = %q, want Applied Physics", grp.Department)
	}
	if len(grp.Groups) != 1 || grp.Groups[0] != "Quantum Devices" {
		t.Errorf("grp-1 groups = %v, want [Quantum Devices]", grp.Groups)
	}
}

func TestResolveHierarchyCycle(t *testing.T) {
	orgs := []types.Organization{
		{ID: "a", Name: "Unit A", PartOf: "b"},
		{ID: "b", Name: "Unit B", PartOf: "a"},
	}

	resolved := ResolveHierarchy(orgs, testMapping())

	for _, ro := range resolved {
		if ro.Status != types.ResolutionUnresolved {
			t.Errorf("%s: status = %q, want unresolved", ro.ID, ro.Status)
		}
		if ro.FacultyCode != "" {
			t.Errorf("%s: code = %q, want empty", ro.ID, ro.FacultyCode)
		}
	}
}

// A faculty match found before the revisit stands; only chains that
// cycle without matching stay unresolved.
func TestResolveHierarchyMatchThenCycle(t *testing.T) {
	orgs := []types.Organization{
		{ID: "i1", Name: "Digital Society Institute", PartOf: "a"},
		{ID: "a", Name: "Unit A", PartOf: "b"},
		{ID: "b", Name: "Unit B", PartOf: "a"},
	}

	resolved := ResolveHierarchy(orgs, testMapping())

	if resolved[0].FacultyCode != "dsi" || resolved[0].Status != types.ResolutionKnown {
		t.Errorf("i1 = %q/%q, want dsi/known", resolved[0].FacultyCode, resolved[0].Status)
	}
	for _, ro := range resolved[1:] {
		if ro.Status != types.ResolutionUnresolved || ro.FacultyCode != "" {
			t.Errorf("%s: got %q/%q, want unresolved with no code", ro.ID, ro.FacultyCode, ro.Status)
		}
	}
}

// An organization named by its short code directly counts as that code.
func TestResolveHierarchyShortCodeName(t *testing.T) {
	orgs := []types.Organization{{ID: "x", Name: "EEMCS"}}

	resolved := ResolveHierarchy(orgs, testMapping())

	if resolved[0].FacultyCode != "eemcs" || resolved[0].Status != types.ResolutionKnown {
		t.Errorf("got %+v, want eemcs/known", resolved[0])
	}
}
