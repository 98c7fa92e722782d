package roster

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date form used everywhere: ISO 8601, date only.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a date value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

// Shift is a bounded span of work on a specific date that needs staffing.
// Assigned employees are held by ID only; resolving an ID back to an
// Employee is always the caller's job.
type Shift struct {
	ID                int       `json:"id"`
	Date              time.Time `json:"date"`
	StartTime         int       `json:"start_time"`
	EndTime           int       `json:"end_time"`
	RolesRequired     []string  `json:"roles_required"`
	Location          string    `json:"location"`
	MinStaff          int       `json:"min_staff"`
	MaxStaff          int       `json:"max_staff"`
	AssignedEmployees []int     `json:"assigned_employees"`
	IsFilled          bool      `json:"is_filled"`
	IsPublished       bool      `json:"is_published"`
}

// DayName returns the weekday name of the shift's date ("Monday", ...).
func (s *Shift) DayName() string {
	return s.Date.Weekday().String()
}

// AssignEmployee assigns an employee to this shift. The preconditions are
// checked in a fixed order so callers get deterministic errors: capacity,
// then role, then availability, then duplicate assignment. Managers bypass
// the role check and may work any shift. On failure nothing is mutated.
func (s *Shift) AssignEmployee(e *Employee) error {
	if len(s.AssignedEmployees) >= s.MaxStaff {
		return ErrShiftFull
	}

	if !roleIn(e.Role, s.RolesRequired) && !e.IsManager {
		return ErrRoleMismatch
	}

	if !e.IsAvailable(s.DayName(), s.StartTime, s.EndTime) {
		return ErrUnavailable
	}

	for _, id := range s.AssignedEmployees {
		if id == e.ID {
			return ErrAlreadyAssigned
		}
	}

	s.AssignedEmployees = append(s.AssignedEmployees, e.ID)
	s.IsFilled = len(s.AssignedEmployees) >= s.MinStaff
	return nil
}

// RemoveEmployee removes an employee ID from the shift and reports whether a
// removal happened. An ID that was never assigned is not an error.
func (s *Shift) RemoveEmployee(employeeID int) bool {
	for i, id := range s.AssignedEmployees {
		if id == employeeID {
			s.AssignedEmployees = append(s.AssignedEmployees[:i], s.AssignedEmployees[i+1:]...)
			s.IsFilled = len(s.AssignedEmployees) >= s.MinStaff
			return true
		}
	}
	return false
}

// DurationHours returns the shift length in fractional hours. Both ends are
// converted to hour + minute/60 first; when the end value is smaller than the
// start value the shift crosses midnight and 24 is added to the end. The
// comparison happens on the fractional-hour values, not the raw HHMM
// integers.
func (s *Shift) DurationHours() float64 {
	startHour := float64(s.StartTime/100) + float64(s.StartTime%100)/60
	endHour := float64(s.EndTime/100) + float64(s.EndTime%100)/60

	if endHour < startHour {
		endHour += 24
	}
	return endHour - startHour
}

// ConflictsWith reports whether two shifts overlap in time on the same date.
// Touching endpoints (one ends exactly when the other starts) do not
// conflict.
func (s *Shift) ConflictsWith(other *Shift) bool {
	if !s.Date.Equal(other.Date) {
		return false
	}
	return !(s.EndTime <= other.StartTime || s.StartTime >= other.EndTime)
}

// FormatTime converts an HHMM integer to a 12-hour clock string, e.g.
// 900 -> "9:00 AM", 1730 -> "5:30 PM". Out-of-range values are not rejected.
func FormatTime(hhmm int) string {
	hours := hhmm / 100
	minutes := hhmm % 100

	switch {
	case hours == 0:
		return fmt.Sprintf("12:%02d AM", minutes)
	case hours < 12:
		return fmt.Sprintf("%d:%02d AM", hours, minutes)
	case hours == 12:
		return fmt.Sprintf("12:%02d PM", minutes)
	default:
		return fmt.Sprintf("%d:%02d PM", hours-12, minutes)
	}
}

// Payroll returns the labor cost of this shift: each assigned employee's
// wage times the shift duration. An assigned ID with no matching employee in
// the supplied collection contributes nothing.
func (s *Shift) Payroll(employees []*Employee) float64 {
	duration := s.DurationHours()

	total := 0.0
	for _, id := range s.AssignedEmployees {
		for _, e := range employees {
			if e.ID == id {
				total += e.Wage * duration
				break
			}
		}
	}
	return total
}

func (s *Shift) String() string {
	return fmt.Sprintf("Shift %d: %s %s %s-%s (%v)",
		s.ID, s.DayName(), s.Date.Format(DateLayout),
		FormatTime(s.StartTime), FormatTime(s.EndTime), s.RolesRequired)
}
