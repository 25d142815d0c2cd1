package components

import (
	"storefront/internal/infra/readstore"
	"storefront/internal/infra/repository"
	"storefront/internal/infra/uow"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartViewReader)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(shared.CatalogReader)),
			fx.As(new(queries.LowStockReader)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(shared.CouponReader)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewReader)),
			fx.As(new(commands.OrderViewReader)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(shared.CartRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyRepository)),
		),
	),
)
