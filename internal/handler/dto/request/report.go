package request

import (
	"time"
)

const reportDateLayout = "2006-01-02"

type SalesReportRequest struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

type LowStockRequest struct {
	// Optional override for the configured low-stock threshold
	Threshold *int32 `form:"threshold" binding:"omitempty,gte=0"`
}

// ParseRange interprets the dates as whole days: the end bound extends to the
// last instant of end_date so the range is inclusive on both sides.
func (r SalesReportRequest) ParseRange() (time.Time, time.Time, error) {
	start, err := time.Parse(reportDateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(reportDateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}
