package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrProductNotFound         = errs.New("product not found")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrOrderNotFound           = errs.New("order not found")
	ErrOrderNotPayable         = errs.New("order is not payable")
	ErrDuplicateOrderRequest   = errs.New("duplicate order request")
	ErrIdempotencyInProgress   = errs.New("order placement in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PlaceOrderInput struct {
	ShippingAddress string
	CouponCode      *string
}

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderCommands interface {
	// PlaceOrder converts the customer's cart into a priced pending order.
	// Header, lines, and cart clearing commit or roll back as one unit.
	// idempotencyKey is optional; when present, a retried request replays the
	// original result instead of placing a second order.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput, idempotencyKey *uuid.UUID) (*PlaceOrderResult, error)
	// Pay moves a pending order to paid and records the payment method. The
	// transition is a single compare-and-swap; a second call conflicts.
	Pay(ctx context.Context, orderID, customerID uuid.UUID, paymentMethod string) (*queries.OrderView, error)
	// AdminSetStatus overwrites the status with no transition legality check.
	AdminSetStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	cartRepo        shared.CartRepository
	orderRepo       shared.OrderRepository
	idempotencyRepo shared.IdempotencyRepository
	catalog         shared.CatalogReader
	coupons         shared.CouponReader
	orderViews      OrderViewReader
	uow             shared.UnitOfWork
	clock           clock.Clock
}

func NewOrderCommands(
	cartRepo shared.CartRepository,
	orderRepo shared.OrderRepository,
	idempotencyRepo shared.IdempotencyRepository,
	catalog shared.CatalogReader,
	coupons shared.CouponReader,
	orderViews OrderViewReader,
	uow shared.UnitOfWork,
	clock clock.Clock,
) OrderCommands {
	return &orderCommandsImpl{
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		idempotencyRepo: idempotencyRepo,
		catalog:         catalog,
		coupons:         coupons,
		orderViews:      orderViews,
		uow:             uow,
		clock:           clock,
	}
}

func (o *orderCommandsImpl) PlaceOrder(
	ctx context.Context,
	customerID uuid.UUID,
	input PlaceOrderInput,
	idempotencyKey *uuid.UUID,
) (*PlaceOrderResult, error) {
	shippingAddress, err := order.NewShippingAddress(input.ShippingAddress)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	claimedKey := false
	if idempotencyKey != nil {
		requestHash := o.calculateRequestHash(customerID, input)
		expiresAt := o.clock.Now().Add(24 * time.Hour)

		replayed, claimed, err := o.handleIdempotency(ctx, *idempotencyKey, customerID, requestHash, expiresAt)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &PlaceOrderResult{Order: replayed, IsReplayed: true}, nil
		}
		claimedKey = claimed
	}

	orderView, err := o.placeNewOrder(ctx, customerID, shippingAddress, input.CouponCode, idempotencyKey)
	if err != nil {
		if claimedKey {
			// Free the claimed key so the customer can retry; otherwise every
			// retry would see a stuck 'processing' record.
			_ = o.idempotencyRepo.Delete(ctx, o.uow.DB(), *idempotencyKey, customerID)
		}
		return nil, err
	}
	return &PlaceOrderResult{Order: orderView, IsReplayed: false}, nil
}

// handleIdempotency returns the replayed view when the key already completed,
// or claimed=true when this call owns the key and must place the order.
func (o *orderCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, customerID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (replayed *queries.OrderView, claimed bool, err error) {
	inserted, err := o.idempotencyRepo.TryInsert(ctx, o.uow.DB(), idempotencyKey, customerID, "POST /orders", requestHash, expiresAt)
	if err != nil {
		return nil, false, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted > 0 {
		return nil, true, nil
	}

	existing, err := o.idempotencyRepo.Get(ctx, o.uow.DB(), idempotencyKey, customerID)
	if err != nil {
		return nil, false, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(o.clock.Now()) {
		// The record outlived its replay window, typically an abandoned
		// claim from a crashed attempt. Reclaim the key.
		if err := o.idempotencyRepo.Delete(ctx, o.uow.DB(), idempotencyKey, customerID); err != nil {
			return nil, false, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		inserted, err = o.idempotencyRepo.TryInsert(ctx, o.uow.DB(), idempotencyKey, customerID, "POST /orders", requestHash, expiresAt)
		if err != nil {
			return nil, false, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if inserted > 0 {
			return nil, true, nil
		}
		// A concurrent request re-claimed the key between delete and insert.
		return nil, false, ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, false, ErrDuplicateOrderRequest
	}

	switch existing.Status {
	case "completed":
		if existing.ResultOrderID != nil {
			// System-level read: replay must succeed even though the order
			// lookup bypasses the ownership filter.
			view, err := o.orderViews.FindByIDSystem(ctx, o.uow.DB(), *existing.ResultOrderID)
			return view, false, err
		}
		return nil, false, errs.New("completed request missing result order ID")

	case "processing":
		return nil, false, ErrIdempotencyInProgress

	default:
		return nil, false, errs.New("invalid idempotency key status")
	}
}

func (o *orderCommandsImpl) placeNewOrder(
	ctx context.Context,
	customerID uuid.UUID,
	shippingAddress order.ShippingAddress,
	couponCode *string,
	idempotencyKey *uuid.UUID,
) (*queries.OrderView, error) {
	var orderID uuid.UUID

	txErr := o.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		cartLines, err := o.cartRepo.LinesForUpdate(ctx, tx, customerID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(cartLines) == 0 {
			return ErrEmptyCart
		}

		lines, err := o.snapshotPrices(ctx, tx, cartLines)
		if err != nil {
			return err
		}

		couponID, discountPercent, err := o.resolveCoupon(ctx, tx, couponCode)
		if err != nil {
			return err
		}

		orderEntity, err := order.NewOrder(customerID, shippingAddress, lines, couponID, discountPercent)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		orderID, err = o.orderRepo.Create(ctx, tx, orderEntity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := o.cartRepo.DeleteAllLines(ctx, tx, customerID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if idempotencyKey != nil {
			resultHash := o.calculateIDHash(orderID)
			if err := o.idempotencyRepo.UpdateStatusCompleted(ctx, tx, *idempotencyKey, customerID, resultHash, orderID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Read-after-write: compose the full view from the read store
	orderView, err := o.orderViews.FindByIDSystem(ctx, o.uow.DB(), orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderView, nil
}

// snapshotPrices freezes the current catalog price onto each line. A product
// deleted since it was carted aborts the whole placement.
func (o *orderCommandsImpl) snapshotPrices(ctx context.Context, tx db.DBTX, cartLines []shared.CartLineSnapshot) ([]order.Line, error) {
	ids := make([]uuid.UUID, len(cartLines))
	for i, line := range cartLines {
		ids[i] = line.ProductID
	}

	products, err := o.catalog.FindByIDs(ctx, tx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	lines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		product, ok := products[cartLine.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		line, err := order.NewLine(product.ID, product.Name, cartLine.Quantity, product.PriceCents)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (o *orderCommandsImpl) resolveCoupon(ctx context.Context, tx db.DBTX, couponCode *string) (*uuid.UUID, *float64, error) {
	if couponCode == nil {
		return nil, nil, nil
	}

	snapshot, err := o.coupons.FindByCode(ctx, tx, *couponCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrCouponNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponEntity, err := coupon.NewCoupon(
		snapshot.ID,
		snapshot.Code,
		snapshot.DiscountPercent,
		snapshot.ValidFrom,
		snapshot.ValidTo,
	)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrInvalidCoupon)
	}

	if err := couponEntity.ValidateUsage(o.clock.Now()); err != nil {
		return nil, nil, ErrInvalidCoupon
	}

	id := couponEntity.ID()
	percent := couponEntity.Discount().PercentOff()
	return &id, &percent, nil
}

func (o *orderCommandsImpl) Pay(ctx context.Context, orderID, customerID uuid.UUID, paymentMethod string) (*queries.OrderView, error) {
	method, err := order.NewPaymentMethod(paymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	affected, err := o.orderRepo.PayIfPending(ctx, o.uow.DB(), orderID, customerID, method.String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if affected == 0 {
		// The swap missed: either no such order for this customer, or the
		// status already moved past pending.
		if _, err := o.orderRepo.FindStatus(ctx, o.uow.DB(), orderID, customerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, ErrOrderNotPayable
	}

	orderView, err := o.orderViews.FindByIDSystem(ctx, o.uow.DB(), orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderView, nil
}

func (o *orderCommandsImpl) AdminSetStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	label, err := order.NewStatusLabel(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	affected, err := o.orderRepo.SetStatus(ctx, o.uow.DB(), orderID, label.String())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (o *orderCommandsImpl) calculateRequestHash(customerID uuid.UUID, input PlaceOrderInput) string {
	data, _ := json.Marshal(struct {
		CustomerID uuid.UUID
		Input      PlaceOrderInput
	}{customerID, input})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (o *orderCommandsImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
