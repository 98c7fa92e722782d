package handlers

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/plinden/chronos-api-go/pkg/roster"
	"github.com/plinden/chronos-api-go/pkg/store"
)

// Session owns the in-memory roster state for the running server: the
// employee list, the schedules and the ID registry. The engine itself is
// synchronous and single-owner, so all mutation and query paths take the
// one session lock; handlers never hand entity pointers to another
// goroutine.
type Session struct {
	mu sync.Mutex

	Registry  *roster.Registry
	Employees []*roster.Employee
	Schedules []*roster.Schedule

	Store *store.FileStore
}

// NewSession restores state from the store if a document exists, otherwise
// starts with sample data so a first run has something to show.
func NewSession(st *store.FileStore) (*Session, error) {
	s := &Session{
		Registry: roster.NewRegistry(),
		Store:    st,
	}

	data, err := st.Load()
	if errors.Is(err, fs.ErrNotExist) {
		s.seedSampleData()
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.restore(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Lock takes the session lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// restore replaces the session state with a decoded document. On any decode
// error the current state is left untouched.
func (s *Session) restore(data []byte) error {
	employees, schedules, counters, err := store.Decode(data, s.Registry.Counters())
	if err != nil {
		return err
	}

	s.Employees = employees
	s.Schedules = schedules
	s.Registry.Restore(counters)
	return nil
}

// Save encodes the current state and writes it through the store. Callers
// must hold the session lock.
func (s *Session) Save() error {
	data, err := store.Encode(s.Employees, s.Schedules, s.Registry.Counters())
	if err != nil {
		return err
	}
	return s.Store.Save(data)
}

// Reload reads the persisted document back into the session. Callers must
// hold the session lock. A corrupt document leaves the session as it was.
func (s *Session) Reload() error {
	data, err := s.Store.Load()
	if err != nil {
		return err
	}
	return s.restore(data)
}

// FindEmployee returns the employee with the given ID, or nil.
func (s *Session) FindEmployee(id int) *roster.Employee {
	for _, e := range s.Employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindSchedule returns the schedule with the given ID, or nil.
func (s *Session) FindSchedule(id int) *roster.Schedule {
	for _, sc := range s.Schedules {
		if sc.ID == id {
			return sc
		}
	}
	return nil
}

// FindShift scans every schedule for the shift with the given ID, or nil.
func (s *Session) FindShift(id int) *roster.Shift {
	for _, sc := range s.Schedules {
		for _, sh := range sc.Shifts {
			if sh.ID == id {
				return sh
			}
		}
	}
	return nil
}

// RemoveEmployee deletes an employee from the session list and unassigns
// them from every shift. Reports whether an employee was removed.
func (s *Session) RemoveEmployee(id int) bool {
	for i, e := range s.Employees {
		if e.ID == id {
			s.Employees = append(s.Employees[:i], s.Employees[i+1:]...)
			for _, sc := range s.Schedules {
				for _, sh := range sc.Shifts {
					sh.RemoveEmployee(id)
				}
			}
			return true
		}
	}
	return false
}

// seedSampleData populates a fresh session with a small crew and one staffed
// week.
func (s *Session) seedSampleData() {
	alice := s.Registry.NewEmployee("Alice Johnson", "555-0101", "alice@restaurant.com", "server", 16.00, 40, 0, false)
	bob := s.Registry.NewEmployee("Bob Chen", "555-0102", "bob@restaurant.com", "cook", 20.00, 40, 0, false)
	carla := s.Registry.NewEmployee("Carla Reyes", "555-0103", "carla@restaurant.com", "manager", 25.00, 45, 0, false)

	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"} {
		alice.AddAvailability(day, 900, 1800)
		bob.AddAvailability(day, 800, 2200)
		carla.AddAvailability(day, 700, 2300)
	}

	s.Employees = []*roster.Employee{alice, bob, carla}

	monday, _ := roster.ParseDate("2025-01-20")
	sunday, _ := roster.ParseDate("2025-01-26")
	week := s.Registry.NewSchedule(monday, sunday, nil)

	lunch := s.Registry.NewShift(monday, 1000, 1400, []string{"server"}, "", 0, 0)
	kitchen := s.Registry.NewShift(monday, 900, 1700, []string{"cook"}, "Kitchen", 0, 0)
	floor := s.Registry.NewShift(monday.AddDate(0, 0, 1), 1100, 1900, []string{"manager"}, "", 0, 0)

	week.AddShift(lunch)
	week.AddShift(kitchen)
	week.AddShift(floor)

	lunch.AssignEmployee(alice)
	kitchen.AssignEmployee(bob)
	floor.AssignEmployee(carla)

	s.Schedules = []*roster.Schedule{week}
}
