package report

import "errors"

var (
	ErrReportNotFound         = errors.New("daily report not found")
	ErrReportAlreadyFiled     = errors.New("a daily report was already filed today")
	ErrReportAlreadyProcessed = errors.New("daily report already processed")
)
