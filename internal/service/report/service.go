package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, req report.CreateReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	exists, err := s.reportRepo.ExistsOnDay(ctx, req.Email, time.Now())
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to check today's report: %w", err)
	}
	if exists {
		return report.ReportResponse{}, report.ErrReportAlreadyFiled
	}

	created, err := s.reportRepo.Create(ctx, report.DailyReport{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		Email:   req.Email,
		Title:   req.Title,
		Content: req.Content,
		Status:  report.StatusPending,
	})
	if err != nil {
		return report.ReportResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (report.ReportResponse, error) {
	rep, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return mapToResponse(rep), nil
}

func (s *ReportServiceImpl) ListReports(ctx context.Context, filter report.Filter) (report.ListReportsResponse, error) {
	reports, totalCount, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return report.ListReportsResponse{}, err
	}

	data := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		data = append(data, mapToResponse(r))
	}
	return report.ListReportsResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ReportServiceImpl) Approve(ctx context.Context, id string) (report.ReportResponse, error) {
	return s.resolve(ctx, id, report.StatusApproved)
}

func (s *ReportServiceImpl) Reject(ctx context.Context, id string) (report.ReportResponse, error) {
	return s.resolve(ctx, id, report.StatusRejected)
}

func (s *ReportServiceImpl) resolve(ctx context.Context, id string, status report.Status) (report.ReportResponse, error) {
	rep, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if rep.Status != report.StatusPending {
		return report.ReportResponse{}, report.ErrReportAlreadyProcessed
	}

	updated, err := s.reportRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return mapToResponse(updated), nil
}

func mapToResponse(r report.DailyReport) report.ReportResponse {
	return report.ReportResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Email:     r.Email,
		Title:     r.Title,
		Content:   r.Content,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
