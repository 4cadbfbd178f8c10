package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if filter.UserID != nil && req.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && string(req.Status) != *filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, approvedBy string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	req.ApprovedBy = &approvedBy
	f.requests[id] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetApprovedRangesOverlapping(_ context.Context, userID string, from, to time.Time) ([]leave.DateRange, error) {
	var ranges []leave.DateRange
	window := leave.DateRange{Start: from, End: to}
	for _, req := range f.requests {
		if req.UserID != userID || req.Status != leave.StatusApproved {
			continue
		}
		r := leave.DateRange{Start: req.StartDate, End: req.EndDate}
		if r.Overlaps(window) {
			ranges = append(ranges, r)
		}
	}
	return ranges, nil
}

func (f *fakeLeaveRepo) HasOverlapping(_ context.Context, userID string, from, to time.Time) (bool, error) {
	window := leave.DateRange{Start: from, End: to}
	for _, req := range f.requests {
		if req.UserID != userID {
			continue
		}
		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			continue
		}
		if (leave.DateRange{Start: req.StartDate, End: req.EndDate}).Overlaps(window) {
			return true, nil
		}
	}
	return false, nil
}

func adminContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "admin",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateRequest_Success(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	result, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-03",
		EndDate:   "2025-03-05",
		Reason:    "family matter",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "2025-03-03", result.StartDate)
	assert.Equal(t, "2025-03-05", result.EndDate)
}

func TestCreateRequest_RejectsOverlap(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-03",
		EndDate:   "2025-03-07",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-07",
		EndDate:   "2025-03-10",
		Reason:    "another trip",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

	// A different employee is free to take the same days.
	_, err = svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-2",
		StartDate: "2025-03-07",
		EndDate:   "2025-03-10",
		Reason:    "trip",
	})
	assert.NoError(t, err)
}

func TestCreateRequest_AllowsAdjacentRanges(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-03",
		EndDate:   "2025-03-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-06",
		EndDate:   "2025-03-08",
		Reason:    "extension",
	})
	assert.NoError(t, err)
}

func TestCreateRequest_InvalidRange(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())

	_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-03",
		Reason:    "backwards",
	})
	assert.Error(t, err)
}

func TestApprove_PendingOnly(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())
	ctx := adminContext(t, "admin-1")

	created, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "emp-1",
		StartDate: "2025-03-03",
		EndDate:   "2025-03-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin-1", *approved.ApprovedBy)

	_, err = svc.Reject(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDateRange_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	a := leave.DateRange{Start: day(3), End: day(7)}

	assert.True(t, a.Overlaps(leave.DateRange{Start: day(7), End: day(10)}))
	assert.True(t, a.Overlaps(leave.DateRange{Start: day(1), End: day(3)}))
	assert.True(t, a.Overlaps(leave.DateRange{Start: day(4), End: day(5)}))
	assert.False(t, a.Overlaps(leave.DateRange{Start: day(8), End: day(10)}))
	assert.False(t, a.Overlaps(leave.DateRange{Start: day(1), End: day(2)}))

	// Times within a day do not affect overlap.
	late := leave.DateRange{Start: day(7).Add(23 * time.Hour), End: day(9)}
	assert.True(t, a.Overlaps(late))
}
