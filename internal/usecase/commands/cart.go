package commands

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errs.New("invalid quantity")
	ErrCartLineNotFound = errs.New("cart line not found")
)

type CartCommands interface {
	// AddOrMergeLine inserts the line or adds the quantity onto an existing
	// one; both concurrent adds survive.
	AddOrMergeLine(ctx context.Context, customerID, productID uuid.UUID, quantity int32) error
	// SetLineQuantity overwrites the quantity and fails when the line is absent.
	SetLineQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int32) error
	// RemoveLine deletes the line; removing an absent line is not an error.
	RemoveLine(ctx context.Context, customerID, productID uuid.UUID) error
	// ClearCart deletes every line for the customer; idempotent.
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}

type cartCommandsImpl struct {
	cartRepo shared.CartRepository
	uow      shared.UnitOfWork
}

func NewCartCommands(cartRepo shared.CartRepository, uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{
		cartRepo: cartRepo,
		uow:      uow,
	}
}

func (c *cartCommandsImpl) AddOrMergeLine(ctx context.Context, customerID, productID uuid.UUID, quantity int32) error {
	if _, err := cart.NewQuantity(quantity); err != nil {
		return errs.Mark(err, ErrInvalidQuantity)
	}

	if err := c.cartRepo.UpsertLine(ctx, c.uow.DB(), customerID, productID, quantity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cartCommandsImpl) SetLineQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int32) error {
	if _, err := cart.NewQuantity(quantity); err != nil {
		return errs.Mark(err, ErrInvalidQuantity)
	}

	affected, err := c.cartRepo.SetLineQuantity(ctx, c.uow.DB(), customerID, productID, quantity)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return ErrCartLineNotFound
	}
	return nil
}

func (c *cartCommandsImpl) RemoveLine(ctx context.Context, customerID, productID uuid.UUID) error {
	if err := c.cartRepo.DeleteLine(ctx, c.uow.DB(), customerID, productID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cartCommandsImpl) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	if err := c.cartRepo.DeleteAllLines(ctx, c.uow.DB(), customerID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
