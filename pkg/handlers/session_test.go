package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/plinden/chronos-api-go/pkg/roster"
	"github.com/plinden/chronos-api-go/pkg/store"
)

func tempStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "scheduling_data.json"))
}

func TestNewSession_SeedsWhenNoData(t *testing.T) {
	s, err := NewSession(tempStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if len(s.Employees) == 0 || len(s.Schedules) == 0 {
		t.Error("Expected sample data on first run")
	}
	if s.Schedules[0].HasConflicts() {
		t.Error("Expected seeded schedule to be conflict-free")
	}
}

func TestSession_SaveAndRestore(t *testing.T) {
	st := tempStore(t)

	first, err := NewSession(st)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if err := first.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second, err := NewSession(st)
	if err != nil {
		t.Fatalf("Reopening session failed: %v", err)
	}

	if len(second.Employees) != len(first.Employees) {
		t.Errorf("Expected %d employees after restore, got %d", len(first.Employees), len(second.Employees))
	}
	if second.Employees[0].ID != first.Employees[0].ID {
		t.Error("Expected employee IDs preserved across restore")
	}

	// A new entity in the restored session must not collide with saved IDs
	e := second.Registry.NewEmployee("New Hire", "555-9999", "new@email.com", "host", 14.00, 0, 0, false)
	for _, existing := range second.Employees {
		if existing.ID == e.ID {
			t.Fatalf("Restored session reissued ID %d", e.ID)
		}
	}
}

func TestSession_ReloadKeepsStateOnCorruptFile(t *testing.T) {
	st := tempStore(t)

	s, err := NewSession(st)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	employeesBefore := len(s.Employees)

	if err := os.WriteFile(st.Path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("could not write corrupt file: %v", err)
	}

	if err := s.Reload(); !errors.Is(err, store.ErrCorruptData) {
		t.Fatalf("Expected ErrCorruptData, got %v", err)
	}
	if len(s.Employees) != employeesBefore {
		t.Error("Expected in-memory state untouched after failed reload")
	}
}

func TestSession_RemoveEmployeeUnassignsEverywhere(t *testing.T) {
	s, err := NewSession(tempStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	var assigned *roster.Shift
	var target int
	for _, sc := range s.Schedules {
		for _, sh := range sc.Shifts {
			if len(sh.AssignedEmployees) > 0 {
				assigned = sh
				target = sh.AssignedEmployees[0]
				break
			}
		}
	}
	if assigned == nil {
		t.Fatal("Expected seeded data to contain an assigned shift")
	}

	if !s.RemoveEmployee(target) {
		t.Fatal("Expected removal to succeed")
	}
	if s.FindEmployee(target) != nil {
		t.Error("Expected employee gone from the session list")
	}
	for _, id := range assigned.AssignedEmployees {
		if id == target {
			t.Error("Expected employee unassigned from shifts on removal")
		}
	}
	if s.RemoveEmployee(target) {
		t.Error("Expected second removal to report false")
	}
}

func TestSession_FindShift(t *testing.T) {
	s, err := NewSession(tempStore(t))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	want := s.Schedules[0].Shifts[0]
	if got := s.FindShift(want.ID); got != want {
		t.Errorf("Expected shift %d, got %v", want.ID, got)
	}
	if s.FindShift(999999) != nil {
		t.Error("Expected nil for unknown shift ID")
	}
}
