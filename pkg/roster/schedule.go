package roster

import (
	"fmt"
	"time"
)

// Schedule is a dated window of shifts, normally one Monday-to-Sunday week.
// Only per-shift range membership is enforced; the engine does not check
// that the window is exactly seven days or starts on a Monday.
type Schedule struct {
	ID        int       `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Shifts    []*Shift  `json:"shifts"`
}

// AddShift appends a shift after validating that its date falls inside the
// schedule window (inclusive on both ends). It does not look for time
// conflicts or duplicates; HasConflicts exists for that.
func (sc *Schedule) AddShift(s *Shift) error {
	if s == nil {
		return ErrNilShift
	}

	if s.Date.Before(sc.StartDate) || s.Date.After(sc.EndDate) {
		return fmt.Errorf("%w: %s not in [%s, %s]", ErrShiftOutOfRange,
			s.Date.Format(DateLayout), sc.StartDate.Format(DateLayout), sc.EndDate.Format(DateLayout))
	}

	sc.Shifts = append(sc.Shifts, s)
	return nil
}

// AllShifts returns the shifts in insertion order.
func (sc *Schedule) AllShifts() []*Shift {
	return sc.Shifts
}

// ShiftsByDate returns all shifts on an exact date.
func (sc *Schedule) ShiftsByDate(date time.Time) []*Shift {
	var out []*Shift
	for _, s := range sc.Shifts {
		if s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out
}

// ShiftsByDateString is ShiftsByDate for a YYYY-MM-DD string.
func (sc *Schedule) ShiftsByDateString(date string) ([]*Shift, error) {
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return sc.ShiftsByDate(d), nil
}

// ShiftsByEmployee returns all shifts the employee ID is assigned to.
func (sc *Schedule) ShiftsByEmployee(employeeID int) []*Shift {
	var out []*Shift
	for _, s := range sc.Shifts {
		for _, id := range s.AssignedEmployees {
			if id == employeeID {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// HasConflicts reports whether any two shifts in the schedule overlap.
// Pairwise comparison, so quadratic in the number of shifts; weekly
// schedules are small enough that this is fine.
func (sc *Schedule) HasConflicts() bool {
	for i, a := range sc.Shifts {
		for _, b := range sc.Shifts[i+1:] {
			if a.ConflictsWith(b) {
				return true
			}
		}
	}
	return false
}

// Payroll returns the total labor cost of every shift in the schedule.
func (sc *Schedule) Payroll(employees []*Employee) float64 {
	total := 0.0
	for _, s := range sc.Shifts {
		total += s.Payroll(employees)
	}
	return total
}
