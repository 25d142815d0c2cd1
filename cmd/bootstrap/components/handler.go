package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		metrics.NewServerMetrics,
		func(cart *api.CartHandler, order *api.OrderHandler, coupon *api.CouponHandler, report *api.ReportHandler) handler.Handlers {
			return handler.Handlers{
				Cart:   cart,
				Order:  order,
				Coupon: coupon,
				Report: report,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
