package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAlreadyCheckedIn    = errors.New("already checked in today")
	ErrNotCheckedIn        = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut   = errors.New("already checked out today")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")
)
