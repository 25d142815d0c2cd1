package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Sales report
// @Description Per-product quantity and revenue over an inclusive date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SalesReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/sales-report [get]
func (h *ReportHandler) SalesReport(c *gin.Context) {
	var req reqdto.SalesReportRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate and endDate are required",
		})
		return
	}

	start, end, err := req.ParseRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be formatted as YYYY-MM-DD",
		})
		return
	}

	rows, err := h.reportQueries.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidReportRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "endDate must not be before startDate",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSalesReportRows(rows))
}

// @Summary Low stock alerts
// @Description Products at or below the stock threshold
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param threshold query int false "Stock threshold override"
// @Success 200 {object} resdto.LowStockResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/low-stock-alerts [get]
func (h *ReportHandler) LowStockAlerts(c *gin.Context) {
	var req reqdto.LowStockRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "threshold must be a non-negative integer",
		})
		return
	}

	alerts, err := h.reportQueries.LowStock(c.Request.Context(), req.Threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLowStockAlerts(alerts))
}
