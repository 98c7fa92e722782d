package roster

import "testing"

func TestIsAvailable_Containment(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)
	e.AddAvailability("Monday", 900, 1800)

	if !e.IsAvailable("Monday", 900, 1800) {
		t.Error("Expected exact window match to be available")
	}
	if !e.IsAvailable("Monday", 1000, 1400) {
		t.Error("Expected span inside window to be available")
	}
	if e.IsAvailable("Monday", 800, 1400) {
		t.Error("Expected span starting before window to be unavailable")
	}
	if e.IsAvailable("Monday", 1000, 1900) {
		t.Error("Expected span ending after window to be unavailable")
	}
	if e.IsAvailable("Tuesday", 1000, 1400) {
		t.Error("Expected other day to be unavailable")
	}
}

func TestIsAvailable_DayCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)
	e.AddAvailability("monday", 900, 1800)

	if !e.IsAvailable("MONDAY", 1000, 1400) {
		t.Error("Expected case-insensitive day matching")
	}
}

func TestIsAvailable_NoSpanningAdjacentWindows(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)
	e.AddAvailability("Monday", 900, 1300)
	e.AddAvailability("Monday", 1300, 1800)

	// The full span is covered only by the union of the two windows; a
	// single-window containment check must still say no.
	if e.IsAvailable("Monday", 1000, 1500) {
		t.Error("Expected span across two adjacent windows to be unavailable")
	}
	if !e.IsAvailable("Monday", 1000, 1200) {
		t.Error("Expected span inside the first window to be available")
	}
}

func TestAddAvailability_Permissive(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)

	// Duplicate and inverted windows are accepted as-is
	e.AddAvailability("Monday", 900, 1800)
	e.AddAvailability("Monday", 900, 1800)
	e.AddAvailability("Friday", 1800, 900)

	if len(e.Availability) != 3 {
		t.Errorf("Expected 3 windows stored verbatim, got %d", len(e.Availability))
	}
}

func TestDerivedRoleFlags(t *testing.T) {
	r := NewRegistry()

	mgr := r.NewEmployee("Carla", "555-0003", "carla@email.com", "Assistant Manager", 25.00, 40, 0, false)
	if !mgr.IsManager || mgr.IsAdmin {
		t.Errorf("Expected assistant manager to be manager only, got manager=%v admin=%v", mgr.IsManager, mgr.IsAdmin)
	}

	owner := r.NewEmployee("Dan", "555-0004", "dan@email.com", "OWNER", 0, 40, 0, false)
	if owner.IsManager || !owner.IsAdmin {
		t.Errorf("Expected owner to be admin only, got manager=%v admin=%v", owner.IsManager, owner.IsAdmin)
	}

	srv := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)
	if srv.IsManager || srv.IsAdmin {
		t.Error("Expected server to be neither manager nor admin")
	}
}

func TestSetRole_RecomputesFlags(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)

	e.SetRole("manager")
	if !e.IsManager {
		t.Error("Expected promotion to manager to set the flag")
	}

	e.SetRole("host")
	if e.IsManager {
		t.Error("Expected demotion to clear the flag")
	}
}

func TestRegistry_EmployeeIDs(t *testing.T) {
	r := NewRegistry()
	first := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 40, 0, false)
	second := r.NewEmployee("Bob", "555-0002", "bob@email.com", "cook", 20.00, 40, 0, false)

	if first.ID != 10000 {
		t.Errorf("Expected first employee ID 10000, got %d", first.ID)
	}
	if second.ID != 10001 {
		t.Errorf("Expected second employee ID 10001, got %d", second.ID)
	}
}

func TestNewEmployee_DefaultMaxHours(t *testing.T) {
	r := NewRegistry()
	e := r.NewEmployee("Alice", "555-0001", "alice@email.com", "server", 16.00, 0, 0, false)

	if e.MaxHours != 40 {
		t.Errorf("Expected default max hours 40, got %d", e.MaxHours)
	}
}
