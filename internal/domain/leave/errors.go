package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
	ErrOverlappingRequest           = errors.New("an approved or pending leave request already covers part of this range")
)
