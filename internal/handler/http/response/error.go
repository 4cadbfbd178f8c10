package response

import (
	"errors"
	"net/http"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/attendance"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/auth"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/event"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/expense"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/leave"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/report"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/task"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google sign-in is not configured", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrMissingPayGrade):
		BadRequest(w, "Unknown pay grade", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists), errors.Is(err, payroll.ErrEmployeeAlreadyProcessed):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrInvalidPeriod), errors.Is(err, payroll.ErrUnknownPayGrade):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Daily report not found")
	case errors.Is(err, report.ErrReportAlreadyFiled):
		Conflict(w, "A daily report was already filed today")
	case errors.Is(err, report.ErrReportAlreadyProcessed):
		Conflict(w, "Daily report already processed")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrExpenseAlreadyProcessed):
		Conflict(w, "Expense already processed")

	// Event domain errors
	case errors.Is(err, event.ErrReviewNotFound):
		NotFound(w, "Event review not found")
	case errors.Is(err, event.ErrAlreadyReviewed):
		Conflict(w, "Event already reviewed")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
