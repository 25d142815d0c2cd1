package response

import (
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalesReportRowResponse struct {
	ProductID         uuid.UUID `json:"productId"`
	ProductName       string    `json:"productName"`
	TotalQuantitySold int64     `json:"totalQuantitySold"`
	RevenueCents      int64     `json:"revenueCents"`
}

type SalesReportResponse struct {
	Rows []SalesReportRowResponse `json:"rows"`
}

type LowStockAlertResponse struct {
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	StockQuantity int32     `json:"stockQuantity"`
}

type LowStockResponse struct {
	Alerts []LowStockAlertResponse `json:"alerts"`
}

func FromSalesReportRows(rows []queries.SalesReportRow) *SalesReportResponse {
	out := make([]SalesReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SalesReportRowResponse{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			TotalQuantitySold: r.TotalQuantitySold,
			RevenueCents:      r.RevenueCents,
		})
	}
	return &SalesReportResponse{Rows: out}
}

func FromLowStockAlerts(alerts []queries.LowStockAlert) *LowStockResponse {
	out := make([]LowStockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, LowStockAlertResponse{
			ProductID:     a.ID,
			ProductName:   a.Name,
			StockQuantity: a.StockQuantity,
		})
	}
	return &LowStockResponse{Alerts: out}
}
