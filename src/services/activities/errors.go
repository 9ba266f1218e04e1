package activities

import "errors"

// Signup failures. Each carries the detail string shown to the caller.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student already signed up for this activity")
	ErrActivityFull     = errors.New("Activity has reached maximum number of participants")
)

// Seed failures.
var (
	ErrInvalidSeed       = errors.New("invalid seed activity")
	ErrDuplicateActivity = errors.New("duplicate activity name")
)
