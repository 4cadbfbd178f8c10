package leave

import "context"

// LeaveService defines the leave request operations.
type LeaveService interface {
	// CreateRequest files a leave request; it is rejected when a pending or
	// approved request of the same user already covers part of the range.
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter Filter) (ListLeaveRequestsResponse, error)
	// Approve and Reject act on pending requests only. Admin only.
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, id string) (LeaveRequestResponse, error)
}
