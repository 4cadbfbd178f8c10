package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/leave"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/report"
	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
)

// ========== IN-MEMORY FAKES ==========

type fakePayrollRepo struct {
	records map[string]payroll.PayrollRecord
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: map[string]payroll.PayrollRecord{}}
}

func (f *fakePayrollRepo) Create(ctx context.Context, r payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.records[r.ID] = r
	return r, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakePayrollRepo) GetByUserPeriod(ctx context.Context, userID string, month, year int) (payroll.PayrollRecord, error) {
	for _, r := range f.records {
		if r.UserID == userID && r.PeriodMonth == month && r.PeriodYear == year {
			return r, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
}

func (f *fakePayrollRepo) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for _, r := range f.records {
		if r.PeriodMonth == month && r.PeriodYear == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	var out []payroll.PayrollRecord
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, r payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	if _, ok := f.records[r.ID]; !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	r.UpdatedAt = time.Now()
	f.records[r.ID] = r
	return r, nil
}

func (f *fakePayrollRepo) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.PayrollRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	r.Status = status
	if status == payroll.StatusPaid {
		now := time.Now()
		r.PaidAt = &now
	}
	f.records[id] = r
	return r, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListActive(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository
	approved map[string][]leave.DateRange
}

func (f *fakeLeaveRepo) GetApprovedRangesOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.DateRange, error) {
	var out []leave.DateRange
	for _, r := range f.approved[userID] {
		if r.Overlaps(leave.DateRange{Start: from, End: to}) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	report.ReportRepository
	filed map[string]bool // email + "|" + yyyy-mm-dd
}

func (f *fakeReportRepo) ExistsOnDay(ctx context.Context, email string, day time.Time) (bool, error) {
	return f.filed[email+"|"+day.Format("2006-01-02")], nil
}

// ========== HELPERS ==========

func adminContext(t *testing.T, userID string) context.Context {
	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "admin",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(t *testing.T) (payroll.PayrollService, *fakePayrollRepo, *fakeUserRepo, *fakeLeaveRepo, *fakeReportRepo) {
	dept := "Engineering"
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"emp-1": {
			ID:            "emp-1",
			Email:         "dev@officemate.io",
			FullName:      "Dev One",
			Department:    &dept,
			PayGrade:      user.PayGradeJunior,
			Role:          user.RoleEmployee,
			InsuranceFlag: true,
			TaxFlag:       true,
			IsActive:      true,
		},
	}}
	payrollRepo := newFakePayrollRepo()
	leaveRepo := &fakeLeaveRepo{approved: map[string][]leave.DateRange{}}
	reportRepo := &fakeReportRepo{filed: map[string]bool{}}

	svc := NewPayrollService(nil, discardLogger, payrollRepo, userRepo, leaveRepo, reportRepo)
	return svc, payrollRepo, userRepo, leaveRepo, reportRepo
}

// fileAllReports marks every day of the month as reported for the email.
func fileAllReports(repo *fakeReportRepo, email string, month, year int) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == time.Month(month); day = day.AddDate(0, 0, 1) {
		repo.filed[email+"|"+day.Format("2006-01-02")] = true
	}
}

// ========== TESTS ==========

func TestPayrollService_ProcessPayroll_Success(t *testing.T) {
	svc, _, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.UserID)
	assert.Equal(t, "dev@officemate.io", resp.Email)
	assert.Equal(t, "junior", resp.PayGrade)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "admin-1", resp.CreatedBy)
	assert.True(t, decimal.NewFromInt(10_000_000).Equal(resp.BaseSalary))
	// All reports filed: no deductions, gross equals base.
	assert.Equal(t, 0, resp.Deductions.TotalDays)
	assert.True(t, decimal.NewFromInt(10_000_000).Equal(resp.GrossIncome))
	// Employee opted into both insurance and tax.
	assert.True(t, decimal.NewFromInt(1_050_000).Equal(resp.Insurance.Total()))
	assert.True(t, resp.TaxAmount.IsPositive())
	assert.True(t, resp.NetPay.IsPositive())
	assert.True(t, resp.NetPay.LessThan(resp.GrossIncome))
}

func TestPayrollService_ProcessPayroll_DuplicatePeriod(t *testing.T) {
	svc, _, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	req := payroll.ProcessPayrollRequest{UserID: "emp-1", PeriodMonth: 3, PeriodYear: 2025}
	_, err := svc.ProcessPayroll(ctx, req)
	require.NoError(t, err)

	_, err = svc.ProcessPayroll(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyExists)
}

func TestPayrollService_ProcessPayroll_UserNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := adminContext(t, "admin-1")

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "ghost",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestPayrollService_ProcessPayroll_InvalidPeriod(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := adminContext(t, "admin-1")

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 13,
		PeriodYear:  2025,
	})

	assert.Error(t, err)
}

func TestPayrollService_ProcessPayroll_LeaveDaysDeducted(t *testing.T) {
	svc, _, _, leaveRepo, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	// Approved leave Monday March 3 through Wednesday March 5.
	leaveRepo.approved["emp-1"] = []leave.DateRange{{
		Start: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
	}}

	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Deductions.TotalDays)
	assert.True(t, decimal.NewFromInt(1_153_845).Equal(resp.Deductions.TotalAmount), "got %s", resp.Deductions.TotalAmount)
	for _, d := range resp.Deductions.Details {
		assert.Equal(t, payroll.DeductionTypeLeave, d.Type)
	}
}

func TestPayrollService_ProcessPayroll_OptOutOverride(t *testing.T) {
	svc, _, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	optOut := false
	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:         "emp-1",
		PeriodMonth:    3,
		PeriodYear:     2025,
		InsuranceOptIn: &optOut,
		TaxOptIn:       &optOut,
	})

	require.NoError(t, err)
	assert.False(t, resp.InsuranceOptIn)
	assert.False(t, resp.TaxOptIn)
	assert.True(t, resp.Insurance.Total().IsZero())
	assert.True(t, resp.TaxAmount.IsZero())
	assert.True(t, resp.NetPay.Equal(resp.GrossIncome))
}

func TestPayrollService_UpdateRecord_Recomputes(t *testing.T) {
	svc, _, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	bonuses := []payroll.LineItem{{Amount: decimal.NewFromInt(2_000_000), Reason: "quarterly bonus"}}
	updated, err := svc.UpdateRecord(ctx, payroll.UpdatePayrollRecordRequest{
		ID:      created.ID,
		Bonuses: &bonuses,
	})

	require.NoError(t, err)
	assert.True(t, updated.GrossIncome.Sub(created.GrossIncome).Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, updated.NetPay.GreaterThan(created.NetPay))
}

func TestPayrollService_UpdateRecord_RejectsPaid(t *testing.T) {
	svc, repo, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, created.ID, payroll.StatusApproved)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, created.ID, payroll.StatusPaid)
	require.NoError(t, err)

	bonuses := []payroll.LineItem{{Amount: decimal.NewFromInt(1), Reason: "late edit"}}
	_, err = svc.UpdateRecord(ctx, payroll.UpdatePayrollRecordRequest{ID: created.ID, Bonuses: &bonuses})
	assert.ErrorIs(t, err, payroll.ErrRecordAlreadyPaid)
}

func TestPayrollService_StatusLifecycle(t *testing.T) {
	svc, _, _, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	// Paying a pending record is not allowed.
	_, err = svc.MarkPaid(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// Approving twice is not allowed.
	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	paid, err := svc.MarkPaid(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.NotNil(t, paid.PaidAt)
}

func TestPayrollService_ListPendingEmployees(t *testing.T) {
	svc, _, userRepo, _, reportRepo := newTestService(t)
	ctx := adminContext(t, "admin-1")
	fileAllReports(reportRepo, "dev@officemate.io", 3, 2025)

	userRepo.users["emp-2"] = user.User{
		ID:       "emp-2",
		Email:    "two@officemate.io",
		FullName: "Dev Two",
		PayGrade: user.PayGradeSenior,
		Role:     user.RoleEmployee,
		IsActive: true,
	}
	userRepo.users["emp-3"] = user.User{
		ID:       "emp-3",
		Email:    "gone@officemate.io",
		FullName: "Former Dev",
		PayGrade: user.PayGradeSenior,
		Role:     user.RoleEmployee,
		IsActive: false,
	}

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		UserID:      "emp-1",
		PeriodMonth: 3,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	pending, err := svc.ListPendingEmployees(ctx, 3, 2025)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "emp-2", pending[0].UserID)
}

func TestPayrollService_GetRecord_NotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}
