package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/payroll"
	"github.com/officemate-hq/officemate-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, user_id, email, full_name, department, pay_grade,
	period_month, period_year, base_salary, bonuses, penalties, allowances,
	insurance_opt_in, tax_opt_in, insurance, tax_amount, deductions,
	gross_income, net_pay, status, created_by, paid_at, created_at, updated_at`

// scanPayrollRecord scans one row into a record, decoding the JSONB detail
// columns (bonuses, penalties, allowances, insurance, deductions).
func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var bonusesBytes, penaltiesBytes, allowancesBytes, insuranceBytes, deductionsBytes []byte

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Email, &rec.FullName, &rec.Department, &rec.PayGrade,
		&rec.PeriodMonth, &rec.PeriodYear, &rec.BaseSalary,
		&bonusesBytes, &penaltiesBytes, &allowancesBytes,
		&rec.InsuranceOptIn, &rec.TaxOptIn, &insuranceBytes, &rec.TaxAmount, &deductionsBytes,
		&rec.GrossIncome, &rec.NetPay, &rec.Status, &rec.CreatedBy, &rec.PaidAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, err
	}

	_ = json.Unmarshal(bonusesBytes, &rec.Bonuses)
	_ = json.Unmarshal(penaltiesBytes, &rec.Penalties)
	_ = json.Unmarshal(allowancesBytes, &rec.Allowances)
	_ = json.Unmarshal(insuranceBytes, &rec.Insurance)
	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)

	return rec, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	bonusesJSON, _ := json.Marshal(record.Bonuses)
	penaltiesJSON, _ := json.Marshal(record.Penalties)
	allowancesJSON, _ := json.Marshal(record.Allowances)
	insuranceJSON, _ := json.Marshal(record.Insurance)
	deductionsJSON, _ := json.Marshal(record.Deductions)

	query := `
		INSERT INTO payroll_records (
			id, user_id, email, full_name, department, pay_grade,
			period_month, period_year, base_salary, bonuses, penalties, allowances,
			insurance_opt_in, tax_opt_in, insurance, tax_amount, deductions,
			gross_income, net_pay, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.UserID, record.Email, record.FullName, record.Department, record.PayGrade,
		record.PeriodMonth, record.PeriodYear, record.BaseSalary,
		bonusesJSON, penaltiesJSON, allowancesJSON,
		record.InsuranceOptIn, record.TaxOptIn, insuranceJSON, record.TaxAmount, deductionsJSON,
		record.GrossIncome, record.NetPay, record.Status, record.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_user_period") {
			return payroll.PayrollRecord{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`
	return scanPayrollRecord(q.QueryRow(ctx, query, id))
}

func (r *payrollRepository) GetByUserPeriod(ctx context.Context, userID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE user_id = $1 AND period_month = $2 AND period_year = $3
	`
	return scanPayrollRecord(q.QueryRow(ctx, query, userID, month, year))
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE period_month = $1 AND period_year = $2
	`
	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records by period: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM payroll_records WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*)" + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	sortColumn := "created_at"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"created_at": "created_at",
			"period":     "period_year DESC, period_month",
			"full_name":  "full_name",
			"net_pay":    "net_pay",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		payrollColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	bonusesJSON, _ := json.Marshal(record.Bonuses)
	penaltiesJSON, _ := json.Marshal(record.Penalties)
	allowancesJSON, _ := json.Marshal(record.Allowances)
	insuranceJSON, _ := json.Marshal(record.Insurance)
	deductionsJSON, _ := json.Marshal(record.Deductions)

	query := `
		UPDATE payroll_records
		SET bonuses = $1, penalties = $2, allowances = $3,
			insurance_opt_in = $4, tax_opt_in = $5, insurance = $6, tax_amount = $7,
			deductions = $8, gross_income = $9, net_pay = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		bonusesJSON, penaltiesJSON, allowancesJSON,
		record.InsuranceOptIn, record.TaxOptIn, insuranceJSON, record.TaxAmount,
		deductionsJSON, record.GrossIncome, record.NetPay, record.ID,
	))
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $1,
			paid_at = CASE WHEN $1 = 'paid' THEN NOW() ELSE paid_at END,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + payrollColumns

	return scanPayrollRecord(q.QueryRow(ctx, query, status, id))
}
