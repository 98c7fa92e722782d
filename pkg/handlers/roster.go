package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/plinden/chronos-api-go/pkg/models"
	"github.com/plinden/chronos-api-go/pkg/roster"
	"github.com/plinden/chronos-api-go/pkg/store"
)

// engineError maps engine sentinel errors onto HTTP statuses. Assignment
// precondition failures are conflicts with current state, not bad requests.
func engineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, roster.ErrShiftFull),
		errors.Is(err, roster.ErrRoleMismatch),
		errors.Is(err, roster.ErrUnavailable),
		errors.Is(err, roster.ErrAlreadyAssigned):
		status = http.StatusConflict
	case errors.Is(err, roster.ErrNilShift),
		errors.Is(err, roster.ErrShiftOutOfRange),
		errors.Is(err, roster.ErrBadDate):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrCorruptData):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// autosave persists the session after a successful mutation. Failure to
// save is logged, not surfaced; the in-memory state is already updated.
func (h *Handler) autosave() {
	if err := h.Session.Save(); err != nil {
		log.Printf("autosave failed: %v", err)
	}
}

// CreateEmployee adds a new employee to the roster
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and role are required"})
		return
	}
	if req.Wage < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wage cannot be negative"})
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	e := h.Session.Registry.NewEmployee(req.Name, req.Phone, req.Email, req.Role,
		req.Wage, req.MaxHours, req.MinHours, req.IsMinor)
	h.Session.Employees = append(h.Session.Employees, e)
	h.autosave()

	c.JSON(http.StatusCreated, e)
}

// ListEmployees returns every employee
func (h *Handler) ListEmployees(c *gin.Context) {
	h.Session.Lock()
	defer h.Session.Unlock()

	c.JSON(http.StatusOK, gin.H{"employees": h.Session.Employees})
}

// GetEmployee returns one employee by ID
func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	e := h.Session.FindEmployee(id)
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// UpdateEmployee edits an employee's fields in place
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Wage < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wage cannot be negative"})
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	e := h.Session.FindEmployee(id)
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Phone != "" {
		e.Phone = req.Phone
	}
	if req.Email != "" {
		e.Email = req.Email
	}
	if req.Role != "" {
		e.SetRole(req.Role)
	}
	if req.Wage > 0 {
		e.Wage = req.Wage
	}
	if req.MaxHours > 0 {
		e.MaxHours = req.MaxHours
	}
	if req.MinHours > 0 {
		e.MinHours = req.MinHours
	}
	e.IsMinor = req.IsMinor

	h.autosave()
	c.JSON(http.StatusOK, e)
}

// DeleteEmployee removes an employee and unassigns them everywhere
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	if !h.Session.RemoveEmployee(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	h.autosave()
	c.JSON(http.StatusOK, gin.H{"message": "Employee removed"})
}

// AddAvailability appends an availability window to an employee
func (h *Handler) AddAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day is required"})
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	e := h.Session.FindEmployee(id)
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	e.AddAvailability(req.Day, req.Start, req.End)
	h.autosave()
	c.JSON(http.StatusOK, e)
}

// CreateSchedule creates a new schedule for a date range
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := roster.ParseDate(req.StartDate)
	if err != nil {
		engineError(c, err)
		return
	}
	end, err := roster.ParseDate(req.EndDate)
	if err != nil {
		engineError(c, err)
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.Registry.NewSchedule(start, end, nil)
	h.Session.Schedules = append(h.Session.Schedules, sc)
	h.autosave()

	c.JSON(http.StatusCreated, sc)
}

// ListSchedules returns every schedule with its shifts
func (h *Handler) ListSchedules(c *gin.Context) {
	h.Session.Lock()
	defer h.Session.Unlock()

	c.JSON(http.StatusOK, gin.H{"schedules": h.Session.Schedules})
}

// GetSchedule returns one schedule by ID
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// AddShift creates a shift and adds it to a schedule
func (h *Handler) AddShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := roster.ParseDate(req.Date)
	if err != nil {
		engineError(c, err)
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	// The shift must land inside the schedule window before an ID is spent
	// on it, otherwise a rejected add would burn a counter value.
	if date.Before(sc.StartDate) || date.After(sc.EndDate) {
		engineError(c, fmt.Errorf("%w: %s", roster.ErrShiftOutOfRange, req.Date))
		return
	}

	shift := h.Session.Registry.NewShift(date, req.StartTime, req.EndTime,
		req.RolesRequired, req.Location, req.MinStaff, req.MaxStaff)
	if err := sc.AddShift(shift); err != nil {
		engineError(c, err)
		return
	}

	h.RecordUsage(c, 1, 0)
	h.autosave()
	c.JSON(http.StatusCreated, shift)
}

// GetScheduleShifts returns a schedule's shifts, optionally filtered by an
// exact date (?date=YYYY-MM-DD) or by assigned employee (?employee_id=N)
func (h *Handler) GetScheduleShifts(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	if date := c.Query("date"); date != "" {
		shifts, err := sc.ShiftsByDateString(date)
		if err != nil {
			engineError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"shifts": shifts})
		return
	}

	if emp := c.Query("employee_id"); emp != "" {
		empID, err := strconv.Atoi(emp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shifts": sc.ShiftsByEmployee(empID)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": sc.AllShifts()})
}

// CheckConflicts reports whether any two shifts in the schedule overlap
func (h *Handler) CheckConflicts(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_conflicts": sc.HasConflicts()})
}

// GetPayroll returns the total labor cost of a schedule plus per-shift costs
func (h *Handler) GetPayroll(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	perShift := make(map[string]float64, len(sc.Shifts))
	for _, s := range sc.Shifts {
		perShift[strconv.Itoa(s.ID)] = s.Payroll(h.Session.Employees)
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  sc.Payroll(h.Session.Employees),
		"shifts": perShift,
	})
}

// AssignShift assigns an employee to a shift
func (h *Handler) AssignShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	shift := h.Session.FindShift(id)
	if shift == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
		return
	}
	e := h.Session.FindEmployee(req.EmployeeID)
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	if err := shift.AssignEmployee(e); err != nil {
		engineError(c, err)
		return
	}

	h.RecordUsage(c, 0, 1)
	h.autosave()
	c.JSON(http.StatusOK, shift)
}

// UnassignShift removes an employee from a shift
func (h *Handler) UnassignShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	shift := h.Session.FindShift(id)
	if shift == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
		return
	}

	removed := shift.RemoveEmployee(req.EmployeeID)
	if removed {
		h.autosave()
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed, "shift": shift})
}

// PublishShift marks a shift as published. The flag is stored and persisted
// but carries no engine semantics.
func (h *Handler) PublishShift(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	shift := h.Session.FindShift(id)
	if shift == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
		return
	}

	shift.IsPublished = true
	h.autosave()
	c.JSON(http.StatusOK, shift)
}

// SaveData persists the full session to the data file
func (h *Handler) SaveData(c *gin.Context) {
	h.Session.Lock()
	defer h.Session.Unlock()

	if err := h.Session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Data saved",
		"employees": len(h.Session.Employees),
		"schedules": len(h.Session.Schedules),
	})
}

// LoadData reloads the session from the data file. A corrupt file is
// rejected and the in-memory state stays exactly as it was.
func (h *Handler) LoadData(c *gin.Context) {
	h.Session.Lock()
	defer h.Session.Unlock()

	if err := h.Session.Reload(); err != nil {
		engineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Data loaded",
		"employees": len(h.Session.Employees),
		"schedules": len(h.Session.Schedules),
	})
}

// GetStats returns the dashboard counters and the total payroll across all
// schedules
func (h *Handler) GetStats(c *gin.Context) {
	h.Session.Lock()
	defer h.Session.Unlock()

	totalShifts := 0
	totalPayroll := 0.0
	for _, sc := range h.Session.Schedules {
		totalShifts += len(sc.Shifts)
		totalPayroll += sc.Payroll(h.Session.Employees)
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Employees:    len(h.Session.Employees),
		Schedules:    len(h.Session.Schedules),
		Shifts:       totalShifts,
		TotalPayroll: totalPayroll,
	})
}

// ExportScheduleCSV writes one CSV row per shift with resolved employee
// names, formatted times and labor cost
func (h *Handler) ExportScheduleCSV(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	h.Session.Lock()
	defer h.Session.Unlock()

	sc := h.Session.FindSchedule(id)
	if sc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"shift_id", "date", "day", "start", "end", "roles", "assigned", "filled", "cost"})

	for _, s := range sc.Shifts {
		names := make([]string, 0, len(s.AssignedEmployees))
		for _, empID := range s.AssignedEmployees {
			if e := h.Session.FindEmployee(empID); e != nil {
				names = append(names, e.Name)
			}
		}

		writer.Write([]string{
			strconv.Itoa(s.ID),
			s.Date.Format(roster.DateLayout),
			s.DayName(),
			roster.FormatTime(s.StartTime),
			roster.FormatTime(s.EndTime),
			strings.Join(s.RolesRequired, "|"),
			strings.Join(names, "|"),
			strconv.FormatBool(s.IsFilled),
			fmt.Sprintf("%.2f", s.Payroll(h.Session.Employees)),
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}
