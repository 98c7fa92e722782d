package roster

import "strings"

// AvailabilityWindow is a single span of time on a named weekday when an
// employee can work. Times are 24-hour HHMM integers (900 = 9:00 AM,
// 1730 = 5:30 PM). Windows are never merged, deduplicated or validated;
// callers may append contradictory windows and the engine tolerates it.
type AvailabilityWindow struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Employee represents a worker with pay rate, hour limits and weekly availability
type Employee struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone_number"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Wage     float64 `json:"wage"`
	MaxHours int     `json:"max_hours"`
	MinHours int     `json:"min_hours"`
	IsMinor  bool    `json:"is_minor"`

	// Derived from Role; recomputed only by SetRole
	IsManager bool `json:"is_manager"`
	IsAdmin   bool `json:"is_admin"`

	Availability []AvailabilityWindow `json:"availability"`
}

var managerRoles = []string{"manager", "assistant manager"}
var adminRoles = []string{"admin", "owner", "general manager"}

func roleIn(role string, set []string) bool {
	for _, r := range set {
		if strings.EqualFold(role, r) {
			return true
		}
	}
	return false
}

// SetRole updates the role label and recomputes the derived manager/admin flags
func (e *Employee) SetRole(role string) {
	e.Role = role
	e.IsManager = roleIn(role, managerRoles)
	e.IsAdmin = roleIn(role, adminRoles)
}

// AddAvailability appends an availability window. No validation is performed:
// start >= end, duplicate and overlapping windows are all accepted as-is.
func (e *Employee) AddAvailability(day string, start, end int) {
	e.Availability = append(e.Availability, AvailabilityWindow{Day: day, Start: start, End: end})
}

// IsAvailable reports whether the requested span is fully contained within a
// single stored window on a matching day (case-insensitive). A span covered
// only by two adjacent windows does not count. Windows crossing midnight are
// not handled.
func (e *Employee) IsAvailable(day string, start, end int) bool {
	for _, w := range e.Availability {
		if strings.EqualFold(w.Day, day) && w.Start <= start && w.End >= end {
			return true
		}
	}
	return false
}
