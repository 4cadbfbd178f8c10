package attendance

type CheckInRequest struct {
	UserID string  `json:"-"`
	Note   *string `json:"note,omitempty"`
}

type CheckOutRequest struct {
	UserID string  `json:"-"`
	Note   *string `json:"note,omitempty"`
}

type AttendanceResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName *string `json:"user_name,omitempty"`
	Date     string  `json:"date"`
	CheckIn  string  `json:"check_in"`
	CheckOut *string `json:"check_out,omitempty"`
	Note     *string `json:"note,omitempty"`
}

type Filter struct {
	UserID   *string
	DateFrom *string
	DateTo   *string
	Page     int
	Limit    int
}

type ListAttendancesResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
