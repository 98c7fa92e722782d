package models

// Request and response shapes for the roster API. The engine entities in
// pkg/roster serialize themselves for responses; these types only describe
// what callers send in.

// EmployeeRequest creates or updates an employee
type EmployeeRequest struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone_number"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Wage     float64 `json:"wage"`
	MaxHours int     `json:"max_hours"`
	MinHours int     `json:"min_hours"`
	IsMinor  bool    `json:"is_minor"`
}

// AvailabilityRequest adds one availability window to an employee
type AvailabilityRequest struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// ScheduleRequest creates a schedule for a date range (YYYY-MM-DD, inclusive)
type ScheduleRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ShiftRequest adds a shift to a schedule. Zero values for location,
// min_staff and max_staff take the engine defaults ("Main", 1, 1).
type ShiftRequest struct {
	Date          string   `json:"date"`
	StartTime     int      `json:"start_time"`
	EndTime       int      `json:"end_time"`
	RolesRequired []string `json:"roles_required"`
	Location      string   `json:"location"`
	MinStaff      int      `json:"min_staff"`
	MaxStaff      int      `json:"max_staff"`
}

// AssignRequest assigns or removes an employee on a shift
type AssignRequest struct {
	EmployeeID int `json:"employee_id"`
}

// StatsResponse is the dashboard summary
type StatsResponse struct {
	Employees    int     `json:"employees"`
	Schedules    int     `json:"schedules"`
	Shifts       int     `json:"shifts"`
	TotalPayroll float64 `json:"total_payroll"`
}
