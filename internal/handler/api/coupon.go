package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponQueries: couponQueries,
	}
}

// @Summary Apply coupon (dry run)
// @Description Check a coupon code against the current time without consuming it
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /apply-coupon [post]
func (h *CouponHandler) ApplyCoupon(c *gin.Context) {
	var req reqdto.ApplyCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.couponQueries.Validate(c.Request.Context(), req.NormalizedCode())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, queries.ErrCouponNotUsable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon is not currently usable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}
