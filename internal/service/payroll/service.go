package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/leave"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/report"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db          *database.DB
	logger      *slog.Logger
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
	leaveRepo   leave.LeaveRepository
	reportRepo  report.ReportRepository
}

func NewPayrollService(
	db *database.DB,
	logger *slog.Logger,
	payrollRepo payroll.PayrollRepository,
	userRepo user.UserRepository,
	leaveRepo leave.LeaveRepository,
	reportRepo report.ReportRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:          db,
		logger:      logger,
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
		leaveRepo:   leaveRepo,
		reportRepo:  reportRepo,
	}
}

// Helper to get user_id from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	createdBy, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	employee, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	baseSalary, ok := payroll.BaseSalaryForGrade(employee.PayGrade)
	if !ok {
		return payroll.PayrollRecordResponse{}, payroll.ErrUnknownPayGrade
	}

	// One record per (employee, month, year).
	_, err = s.payrollRepo.GetByUserPeriod(ctx, req.UserID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		return payroll.PayrollRecordResponse{}, payroll.ErrRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	record := payroll.PayrollRecord{
		ID:             uuid.NewString(),
		UserID:         employee.ID,
		Email:          employee.Email,
		FullName:       employee.FullName,
		Department:     employee.Department,
		PayGrade:       employee.PayGrade,
		PeriodMonth:    req.PeriodMonth,
		PeriodYear:     req.PeriodYear,
		BaseSalary:     baseSalary,
		Bonuses:        req.Bonuses,
		Penalties:      req.Penalties,
		InsuranceOptIn: employee.InsuranceFlag,
		TaxOptIn:       employee.TaxFlag,
		Status:         payroll.StatusPending,
		CreatedBy:      createdBy,
	}
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.InsuranceOptIn != nil {
		record.InsuranceOptIn = *req.InsuranceOptIn
	}
	if req.TaxOptIn != nil {
		record.TaxOptIn = *req.TaxOptIn
	}

	s.recompute(ctx, &record, time.Now())

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListRecordsResponse, error) {
	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	return payroll.ListRecordsResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrRecordAlreadyPaid
	}

	if req.Bonuses != nil {
		record.Bonuses = *req.Bonuses
	}
	if req.Penalties != nil {
		record.Penalties = *req.Penalties
	}
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.InsuranceOptIn != nil {
		record.InsuranceOptIn = *req.InsuranceOptIn
	}
	if req.TaxOptIn != nil {
		record.TaxOptIn = *req.TaxOptIn
	}

	s.recompute(ctx, &record, time.Now())

	updated, err := s.payrollRepo.Update(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if record.Status != payroll.StatusPending {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	updated, err := s.payrollRepo.UpdateStatus(ctx, id, payroll.StatusApproved)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if record.Status != payroll.StatusApproved {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	updated, err := s.payrollRepo.UpdateStatus(ctx, id, payroll.StatusPaid)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

func (s *PayrollServiceImpl) ListPendingEmployees(ctx context.Context, month, year int) ([]payroll.PendingEmployeeResponse, error) {
	employees, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records for period: %w", err)
	}

	processed := make(map[string]bool, len(records))
	for _, r := range records {
		processed[r.UserID] = true
	}

	result := []payroll.PendingEmployeeResponse{}
	for _, emp := range employees {
		if processed[emp.ID] {
			continue
		}
		result = append(result, payroll.PendingEmployeeResponse{
			UserID:     emp.ID,
			Email:      emp.Email,
			FullName:   emp.FullName,
			Department: emp.Department,
			PayGrade:   string(emp.PayGrade),
		})
	}

	return result, nil
}

// recompute refreshes every computed field of the record from its inputs:
// the deduction scan, insurance, tax and net pay. Deduction details are
// produced fresh each run, never diffed against a prior computation.
func (s *PayrollServiceImpl) recompute(ctx context.Context, record *payroll.PayrollRecord, asOf time.Time) {
	target := ScanTarget{
		UserID:     record.UserID,
		Email:      record.Email,
		BaseSalary: record.BaseSalary,
	}

	leaveLookup := func(ctx context.Context, userID string, day time.Time) (bool, error) {
		ranges, err := s.leaveRepo.GetApprovedRangesOverlapping(ctx, userID, day, day)
		if err != nil {
			return false, err
		}
		return len(ranges) > 0, nil
	}

	record.Deductions = ScanDeductions(ctx, s.logger, target,
		record.PeriodMonth, record.PeriodYear, asOf,
		leaveLookup, s.reportRepo.ExistsOnDay)

	result := ComputePayroll(CalculationInput{
		BaseSalary:      record.BaseSalary,
		NetBonusPenalty: record.NetBonusPenalty(),
		Allowances:      record.Allowances,
		InsuranceOptIn:  record.InsuranceOptIn,
		TaxOptIn:        record.TaxOptIn,
		DeductionAmount: record.Deductions.TotalAmount,
	})

	record.Insurance = result.Insurance
	record.TaxAmount = result.TaxAmount
	record.GrossIncome = result.GrossIncome
	record.NetPay = result.NetPay
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paidAtStr *string
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	bonuses := r.Bonuses
	if bonuses == nil {
		bonuses = []payroll.LineItem{}
	}
	penalties := r.Penalties
	if penalties == nil {
		penalties = []payroll.LineItem{}
	}

	return payroll.PayrollRecordResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		Email:          r.Email,
		FullName:       r.FullName,
		Department:     r.Department,
		PayGrade:       string(r.PayGrade),
		PeriodMonth:    r.PeriodMonth,
		PeriodYear:     r.PeriodYear,
		BaseSalary:     r.BaseSalary,
		Bonuses:        bonuses,
		Penalties:      penalties,
		Allowances:     r.Allowances,
		InsuranceOptIn: r.InsuranceOptIn,
		TaxOptIn:       r.TaxOptIn,
		Insurance:      r.Insurance,
		TaxAmount:      r.TaxAmount,
		Deductions:     r.Deductions,
		GrossIncome:    r.GrossIncome,
		NetPay:         r.NetPay,
		Status:         string(r.Status),
		CreatedBy:      r.CreatedBy,
		PaidAt:         paidAtStr,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
