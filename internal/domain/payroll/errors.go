package payroll

import "errors"

var (
	ErrRecordNotFound           = errors.New("payroll record not found")
	ErrRecordAlreadyExists      = errors.New("payroll record already exists for this period")
	ErrRecordAlreadyPaid        = errors.New("payroll record already paid, cannot modify")
	ErrInvalidPeriod            = errors.New("invalid payroll period")
	ErrUnknownPayGrade          = errors.New("employee has an unknown pay grade")
	ErrInvalidStatusTransition  = errors.New("invalid payroll status transition")
	ErrNegativeBaseSalary       = errors.New("base salary must be non-negative")
	ErrEmployeeAlreadyProcessed = errors.New("employee already has a payroll record for this period")
)
