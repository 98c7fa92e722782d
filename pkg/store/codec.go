package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/plinden/chronos-api-go/pkg/roster"
)

// ErrCorruptData means the persisted document itself could not be parsed.
// Missing optional fields are NOT corruption; they fall back to per-field
// defaults instead.
var ErrCorruptData = errors.New("corrupt data file")

// SchemaVersion tags the persisted document format.
const SchemaVersion = "1.0"

// Wire records. Optional fields are pointers so that an absent field can be
// told apart from an explicit zero and given its documented default on
// decode. Encode always fills them in.

type availabilityRecord struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type employeeRecord struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	Phone        string               `json:"phone_number"`
	Email        string               `json:"email"`
	Role         string               `json:"role"`
	Wage         float64              `json:"wage"`
	MaxHours     *int                 `json:"max_hours,omitempty"`
	MinHours     *int                 `json:"min_hours,omitempty"`
	IsMinor      *bool                `json:"is_minor,omitempty"`
	Availability []availabilityRecord `json:"availability,omitempty"`
}

type shiftRecord struct {
	ID                int      `json:"id"`
	Date              string   `json:"date"`
	StartTime         int      `json:"start_time"`
	EndTime           int      `json:"end_time"`
	RolesRequired     []string `json:"roles_required"`
	Location          *string  `json:"location,omitempty"`
	MinStaff          *int     `json:"min_staff,omitempty"`
	MaxStaff          *int     `json:"max_staff,omitempty"`
	AssignedEmployees []int    `json:"assigned_employees"`
	IsFilled          *bool    `json:"is_filled,omitempty"`
	IsPublished       *bool    `json:"is_published,omitempty"`
}

type scheduleRecord struct {
	ID        int           `json:"id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Shifts    []shiftRecord `json:"shifts"`
}

type metadataRecord struct {
	Version        string `json:"version"`
	LastSaved      string `json:"last_saved"`
	EmployeeCount  int    `json:"employee_count"`
	ScheduleCount  int    `json:"schedule_count"`
	NextEmployeeID *int   `json:"next_employee_id,omitempty"`
	NextShiftID    *int   `json:"next_shift_id,omitempty"`
	NextScheduleID *int   `json:"next_schedule_id,omitempty"`
}

type document struct {
	Employees []employeeRecord `json:"employees"`
	Schedules []scheduleRecord `json:"schedules"`
	Metadata  metadataRecord   `json:"metadata"`
}

// Encode serializes the full object graph plus the registry counters into
// an indented JSON document.
func Encode(employees []*roster.Employee, schedules []*roster.Schedule, counters roster.Counters) ([]byte, error) {
	doc := document{
		Employees: make([]employeeRecord, 0, len(employees)),
		Schedules: make([]scheduleRecord, 0, len(schedules)),
		Metadata: metadataRecord{
			Version:        SchemaVersion,
			LastSaved:      time.Now().Format(time.RFC3339),
			EmployeeCount:  len(employees),
			ScheduleCount:  len(schedules),
			NextEmployeeID: &counters.NextEmployeeID,
			NextShiftID:    &counters.NextShiftID,
			NextScheduleID: &counters.NextScheduleID,
		},
	}

	for _, e := range employees {
		doc.Employees = append(doc.Employees, encodeEmployee(e))
	}
	for _, sc := range schedules {
		doc.Schedules = append(doc.Schedules, encodeSchedule(sc))
	}

	return json.MarshalIndent(doc, "", "  ")
}

func encodeEmployee(e *roster.Employee) employeeRecord {
	rec := employeeRecord{
		ID:           e.ID,
		Name:         e.Name,
		Phone:        e.Phone,
		Email:        e.Email,
		Role:         e.Role,
		Wage:         e.Wage,
		MaxHours:     ptr(e.MaxHours),
		MinHours:     ptr(e.MinHours),
		IsMinor:      ptr(e.IsMinor),
		Availability: make([]availabilityRecord, 0, len(e.Availability)),
	}
	for _, w := range e.Availability {
		rec.Availability = append(rec.Availability, availabilityRecord{Day: w.Day, Start: w.Start, End: w.End})
	}
	return rec
}

func encodeSchedule(sc *roster.Schedule) scheduleRecord {
	rec := scheduleRecord{
		ID:        sc.ID,
		StartDate: sc.StartDate.Format(roster.DateLayout),
		EndDate:   sc.EndDate.Format(roster.DateLayout),
		Shifts:    make([]shiftRecord, 0, len(sc.Shifts)),
	}
	for _, s := range sc.Shifts {
		assigned := s.AssignedEmployees
		if assigned == nil {
			assigned = []int{}
		}
		rec.Shifts = append(rec.Shifts, shiftRecord{
			ID:                s.ID,
			Date:              s.Date.Format(roster.DateLayout),
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			RolesRequired:     s.RolesRequired,
			Location:          ptr(s.Location),
			MinStaff:          ptr(s.MinStaff),
			MaxStaff:          ptr(s.MaxStaff),
			AssignedEmployees: assigned,
			IsFilled:          ptr(s.IsFilled),
			IsPublished:       ptr(s.IsPublished),
		})
	}
	return rec
}

// Decode reconstructs the object graph from a persisted document. Entities
// keep their original IDs. The returned counters start from the passed-in
// current values; a counter present in metadata overwrites its value, an
// absent one leaves it untouched. An unparseable document fails with
// ErrCorruptData and the caller should keep whatever state it already has.
func Decode(data []byte, current roster.Counters) ([]*roster.Employee, []*roster.Schedule, roster.Counters, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, current, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	employees := make([]*roster.Employee, 0, len(doc.Employees))
	for _, rec := range doc.Employees {
		employees = append(employees, decodeEmployee(rec))
	}

	schedules := make([]*roster.Schedule, 0, len(doc.Schedules))
	for _, rec := range doc.Schedules {
		sc, err := decodeSchedule(rec)
		if err != nil {
			return nil, nil, current, err
		}
		schedules = append(schedules, sc)
	}

	counters := current
	if doc.Metadata.NextEmployeeID != nil {
		counters.NextEmployeeID = *doc.Metadata.NextEmployeeID
	}
	if doc.Metadata.NextShiftID != nil {
		counters.NextShiftID = *doc.Metadata.NextShiftID
	}
	if doc.Metadata.NextScheduleID != nil {
		counters.NextScheduleID = *doc.Metadata.NextScheduleID
	}

	return employees, schedules, counters, nil
}

func decodeEmployee(rec employeeRecord) *roster.Employee {
	e := &roster.Employee{
		ID:           rec.ID,
		Name:         rec.Name,
		Phone:        rec.Phone,
		Email:        rec.Email,
		Wage:         rec.Wage,
		MaxHours:     orDefault(rec.MaxHours, 40),
		MinHours:     orDefault(rec.MinHours, 0),
		IsMinor:      orDefaultBool(rec.IsMinor, false),
		Availability: []roster.AvailabilityWindow{},
	}
	// The manager/admin flags are not persisted; derive them from the role
	e.SetRole(rec.Role)

	for _, w := range rec.Availability {
		e.AddAvailability(w.Day, w.Start, w.End)
	}
	return e
}

func decodeShift(rec shiftRecord) (*roster.Shift, error) {
	date, err := roster.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}

	roles := rec.RolesRequired
	if roles == nil {
		roles = []string{}
	}
	assigned := rec.AssignedEmployees
	if assigned == nil {
		assigned = []int{}
	}

	return &roster.Shift{
		ID:                rec.ID,
		Date:              date,
		StartTime:         rec.StartTime,
		EndTime:           rec.EndTime,
		RolesRequired:     roles,
		Location:          orDefaultString(rec.Location, "Main"),
		MinStaff:          orDefault(rec.MinStaff, 1),
		MaxStaff:          orDefault(rec.MaxStaff, 1),
		AssignedEmployees: assigned,
		IsFilled:          orDefaultBool(rec.IsFilled, false),
		IsPublished:       orDefaultBool(rec.IsPublished, false),
	}, nil
}

func decodeSchedule(rec scheduleRecord) (*roster.Schedule, error) {
	start, err := roster.ParseDate(rec.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := roster.ParseDate(rec.EndDate)
	if err != nil {
		return nil, err
	}

	sc := &roster.Schedule{
		ID:        rec.ID,
		StartDate: start,
		EndDate:   end,
		Shifts:    []*roster.Shift{},
	}
	for _, sr := range rec.Shifts {
		s, err := decodeShift(sr)
		if err != nil {
			return nil, err
		}
		sc.Shifts = append(sc.Shifts, s)
	}
	return sc, nil
}

func ptr[T any](v T) *T { return &v }

func orDefault(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func orDefaultBool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func orDefaultString(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
