package roster

import "testing"

func TestDefaultRoster(t *testing.T) {
	r := Default()
	if r.Len() != 10 {
		t.Fatalf("Expected 10 pilots, got %d", r.Len())
	}

	p, ok := r.Find("THT1001")
	if !ok {
		t.Fatal("Expected THT1001 to be on the roster")
	}
	if !p.IsStaff() {
		t.Error("Expected THT1001 to be staff")
	}
	if p.DefaultHours != "232h" {
		t.Errorf("Expected default 232h, got %s", p.DefaultHours)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := Default()
	all := r.All()
	all[0].Name = "changed"

	p, _ := r.Find(all[0].ID)
	if p.Name == "changed" {
		t.Error("Expected roster to be unaffected by changes to All()")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(defaultPilots[:1:1])
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	dup := append(defaultPilots[:1:1], defaultPilots[0])
	if _, err := New(dup); err == nil {
		t.Error("Expected error for duplicate identifier")
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
pilots:
  - id: THT2001
    name: Test Pilot
    grade: cpl
    role: STAFF
    fshub_id: "42"
    default: 12h
  - id: THT2002
    name: Other Pilot
    grade: EP
    role: Pilote
    default: 0h
`)
	r, err := Parse(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Expected 2 pilots, got %d", r.Len())
	}

	first, _ := r.Find("THT2001")
	if !first.IsStaff() || first.Grade != "CPL" || first.FsHubID != "42" {
		t.Errorf("Unexpected first pilot: %+v", first)
	}

	second, _ := r.Find("THT2002")
	if second.IsStaff() || second.HasProfile() {
		t.Errorf("Unexpected second pilot: %+v", second)
	}
}

func TestParseUnknownGrade(t *testing.T) {
	_, err := Parse([]byte("pilots:\n  - {id: X1, name: X, grade: ATPL}\n"))
	if err == nil {
		t.Error("Expected error for unknown grade")
	}
}
