package roster

import "time"

// Counters holds the next-ID values for each entity type. They are part of
// the persisted document so that entities created after a reload never
// collide with restored IDs.
type Counters struct {
	NextEmployeeID int
	NextShiftID    int
	NextScheduleID int
}

// Registry hands out monotonic entity IDs and is the only constructor of
// engine entities. IDs are never reused or reassigned; restoring persisted
// entities keeps their original IDs and restores the counters wholesale.
type Registry struct {
	next Counters
}

// NewRegistry returns a registry with the initial counter values: employees
// start at 10000, shifts and schedules at 1000.
func NewRegistry() *Registry {
	return &Registry{next: Counters{
		NextEmployeeID: 10000,
		NextShiftID:    1000,
		NextScheduleID: 1000,
	}}
}

// Counters returns the current next-ID values.
func (r *Registry) Counters() Counters {
	return r.next
}

// Restore replaces the counter values, typically from persisted metadata.
func (r *Registry) Restore(c Counters) {
	r.next = c
}

// NewEmployee creates an employee with the next employee ID. A zero maxHours
// means the default of 40 hours per week. The manager/admin flags are
// derived from the role label here and only change via SetRole.
func (r *Registry) NewEmployee(name, phone, email, role string, wage float64, maxHours, minHours int, isMinor bool) *Employee {
	if maxHours == 0 {
		maxHours = 40
	}

	e := &Employee{
		ID:       r.next.NextEmployeeID,
		Name:     name,
		Phone:    phone,
		Email:    email,
		Wage:     wage,
		MaxHours: maxHours,
		MinHours: minHours,
		IsMinor:  isMinor,
	}
	e.SetRole(role)
	r.next.NextEmployeeID++
	return e
}

// NewShift creates a shift with the next shift ID. Zero values take the
// documented defaults: location "Main", minStaff 1, maxStaff 1. A nil
// rolesRequired becomes an empty list.
func (r *Registry) NewShift(date time.Time, startTime, endTime int, rolesRequired []string, location string, minStaff, maxStaff int) *Shift {
	if rolesRequired == nil {
		rolesRequired = []string{}
	}
	if location == "" {
		location = "Main"
	}
	if minStaff == 0 {
		minStaff = 1
	}
	if maxStaff == 0 {
		maxStaff = 1
	}

	s := &Shift{
		ID:                r.next.NextShiftID,
		Date:              date,
		StartTime:         startTime,
		EndTime:           endTime,
		RolesRequired:     rolesRequired,
		Location:          location,
		MinStaff:          minStaff,
		MaxStaff:          maxStaff,
		AssignedEmployees: []int{},
	}
	r.next.NextShiftID++
	return s
}

// NewSchedule creates a schedule with the next schedule ID. The date range
// is inclusive and intended to span Monday through Sunday, though only shift
// membership in the range is ever enforced.
func (r *Registry) NewSchedule(startDate, endDate time.Time, shifts []*Shift) *Schedule {
	if shifts == nil {
		shifts = []*Shift{}
	}

	sc := &Schedule{
		ID:        r.next.NextScheduleID,
		StartDate: startDate,
		EndDate:   endDate,
		Shifts:    shifts,
	}
	r.next.NextScheduleID++
	return sc
}
