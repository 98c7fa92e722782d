package roster

import (
	"errors"
	"fmt"
	"testing"
)

func weekSchedule(r *Registry) *Schedule {
	start, _ := ParseDate("2025-01-20")
	end, _ := ParseDate("2025-01-26")
	return r.NewSchedule(start, end, nil)
}

func TestAddShift_InRange(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	date, _ := ParseDate("2025-01-22")
	s := r.NewShift(date, 1000, 1400, []string{"server"}, "", 0, 0)

	if err := sc.AddShift(s); err != nil {
		t.Fatalf("Expected in-range shift to be added, got %v", err)
	}
	if len(sc.AllShifts()) != 1 {
		t.Errorf("Expected 1 shift, got %d", len(sc.AllShifts()))
	}
}

func TestAddShift_Boundaries(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	first, _ := ParseDate("2025-01-20")
	last, _ := ParseDate("2025-01-26")

	if err := sc.AddShift(r.NewShift(first, 900, 1200, nil, "", 0, 0)); err != nil {
		t.Errorf("Expected shift on start date to be accepted, got %v", err)
	}
	if err := sc.AddShift(r.NewShift(last, 900, 1200, nil, "", 0, 0)); err != nil {
		t.Errorf("Expected shift on end date to be accepted, got %v", err)
	}
}

func TestAddShift_OutOfRange(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	date, _ := ParseDate("2025-01-30")
	s := r.NewShift(date, 1000, 1400, nil, "", 0, 0)

	err := sc.AddShift(s)
	if !errors.Is(err, ErrShiftOutOfRange) {
		t.Errorf("Expected ErrShiftOutOfRange, got %v", err)
	}
	if len(sc.AllShifts()) != 0 {
		t.Error("Expected out-of-range shift not to be appended")
	}
}

func TestAddShift_Nil(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	if !errors.Is(sc.AddShift(nil), ErrNilShift) {
		t.Error("Expected ErrNilShift for nil shift")
	}
}

func TestShiftsByDate(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	mon, _ := ParseDate("2025-01-20")
	tue, _ := ParseDate("2025-01-21")
	sc.AddShift(r.NewShift(mon, 900, 1200, nil, "", 0, 0))
	sc.AddShift(r.NewShift(mon, 1300, 1700, nil, "", 0, 0))
	sc.AddShift(r.NewShift(tue, 900, 1200, nil, "", 0, 0))

	if got := len(sc.ShiftsByDate(mon)); got != 2 {
		t.Errorf("Expected 2 Monday shifts, got %d", got)
	}

	fromString, err := sc.ShiftsByDateString("2025-01-21")
	if err != nil {
		t.Fatalf("Expected parseable date string, got %v", err)
	}
	if len(fromString) != 1 {
		t.Errorf("Expected 1 Tuesday shift, got %d", len(fromString))
	}

	if _, err := sc.ShiftsByDateString("01/21/2025"); !errors.Is(err, ErrBadDate) {
		t.Errorf("Expected ErrBadDate for non-ISO date, got %v", err)
	}
}

func TestShiftsByEmployee(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	e := serverAvailableMonday(r)
	mon, _ := ParseDate("2025-01-20")

	assigned := r.NewShift(mon, 1000, 1400, []string{"server"}, "", 0, 0)
	other := r.NewShift(mon, 1500, 1700, []string{"server"}, "", 0, 0)
	sc.AddShift(assigned)
	sc.AddShift(other)
	assigned.AssignEmployee(e)

	got := sc.ShiftsByEmployee(e.ID)
	if len(got) != 1 || got[0].ID != assigned.ID {
		t.Errorf("Expected only the assigned shift, got %v", got)
	}
	if len(sc.ShiftsByEmployee(99999)) != 0 {
		t.Error("Expected no shifts for unknown employee")
	}
}

func TestHasConflicts(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	mon, _ := ParseDate("2025-01-20")
	sc.AddShift(r.NewShift(mon, 1000, 1400, nil, "", 0, 0))
	sc.AddShift(r.NewShift(mon, 1400, 1800, nil, "", 0, 0))

	if sc.HasConflicts() {
		t.Error("Expected touching shifts not to conflict")
	}

	sc.AddShift(r.NewShift(mon, 1300, 1500, nil, "", 0, 0))
	if !sc.HasConflicts() {
		t.Error("Expected overlapping shift to be detected")
	}
}

func TestSchedulePayroll(t *testing.T) {
	r := testRegistry()
	sc := weekSchedule(r)

	alice := serverAvailableMonday(r) // $16.00/hr
	bob := r.NewEmployee("Bob", "555-0002", "bob@email.com", "cook", 20.00, 40, 0, false)
	bob.AddAvailability("Monday", 900, 1800)
	employees := []*Employee{alice, bob}

	mon, _ := ParseDate("2025-01-20")
	serving := r.NewShift(mon, 1000, 1400, []string{"server"}, "", 0, 0) // 4h * $16
	cooking := r.NewShift(mon, 1000, 1800, []string{"cook"}, "", 0, 0)   // 8h * $20
	sc.AddShift(serving)
	sc.AddShift(cooking)
	serving.AssignEmployee(alice)
	cooking.AssignEmployee(bob)

	if total := sc.Payroll(employees); total != 224.00 {
		t.Errorf("Expected $224.00 total, got %f", total)
	}
}

func TestScheduleIDs(t *testing.T) {
	r := testRegistry()
	first := weekSchedule(r)
	second := weekSchedule(r)

	if first.ID != 1000 || second.ID != 1001 {
		t.Errorf("Expected schedule IDs 1000 and 1001, got %d and %d", first.ID, second.ID)
	}
}

// Conflict detection is a pairwise scan, so quadratic in the shift count.
// The benchmark pins down that known cost for realistic week sizes.
func BenchmarkHasConflicts(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		b.Run(fmt.Sprintf("shifts-%d", n), func(b *testing.B) {
			r := NewRegistry()
			start, _ := ParseDate("2025-01-20")
			end, _ := ParseDate("2025-01-26")
			sc := r.NewSchedule(start, end, nil)

			// Non-overlapping 15-minute shifts so the scan never exits early
			for i := 0; i < n; i++ {
				day := start.AddDate(0, 0, i%7)
				slot := i / 7
				startTime := (slot/2)*100 + (slot%2)*30
				sc.AddShift(r.NewShift(day, startTime, startTime+15, nil, "", 0, 0))
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sc.HasConflicts()
			}
		})
	}
}
