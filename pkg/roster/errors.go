package roster

import "errors"

// Assignment errors, in the order AssignEmployee checks them
var (
	ErrShiftFull       = errors.New("shift is already full")
	ErrRoleMismatch    = errors.New("employee's role does not match shift requirements")
	ErrUnavailable     = errors.New("employee is not available for chosen day/time")
	ErrAlreadyAssigned = errors.New("employee is already assigned to this shift")
)

// Schedule errors
var (
	ErrNilShift        = errors.New("cannot add nil shift to schedule")
	ErrShiftOutOfRange = errors.New("shift date is outside schedule range")
)

// ErrBadDate is returned when a date string is not in YYYY-MM-DD form.
var ErrBadDate = errors.New("invalid date format, expected YYYY-MM-DD")
