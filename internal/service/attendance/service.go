package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func todayDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	today := todayDate()

	_, err := s.attendanceRepo.GetByUserDate(ctx, req.UserID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		Date:    today,
		CheckIn: time.Now(),
		Note:    req.Note,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	today := todayDate()

	att, err := s.attendanceRepo.GetByUserDate(ctx, req.UserID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if att.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := s.attendanceRepo.SetCheckOut(ctx, att.ID, time.Now(), req.Note)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *AttendanceServiceImpl) ListAttendances(ctx context.Context, filter attendance.Filter) (attendance.ListAttendancesResponse, error) {
	attendances, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendancesResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		data = append(data, mapToResponse(a))
	}
	return attendance.ListAttendancesResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	var checkOut *string
	if a.CheckOut != nil {
		str := a.CheckOut.Format(time.RFC3339)
		checkOut = &str
	}
	return attendance.AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		UserName: a.UserName,
		Date:     a.Date.Format("2006-01-02"),
		CheckIn:  a.CheckIn.Format(time.RFC3339),
		CheckOut: checkOut,
		Note:     a.Note,
	}
}
