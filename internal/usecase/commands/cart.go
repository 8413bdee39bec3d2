package commands

import (
	"context"
	"log/slog"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/infra"
	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

type CartCommands interface {
	// AddItem always inserts a new row, even when the voucher is already in the cart.
	AddItem(ctx context.Context, userID, voucherID int64, quantity *int) (int64, error)
	UpdateItem(ctx context.Context, userID, cartID int64, quantity int) error
	// RemoveItem succeeds whether or not the row still exists.
	RemoveItem(ctx context.Context, userID, cartID int64) error
}

type cartCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{uow: uow, clock: clk}
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, userID, voucherID int64, quantity *int) (int64, error) {
	n := cart.DefaultQuantity
	if quantity != nil {
		n = *quantity
	}
	qty, err := cart.NewQuantity(n)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}
	item, err := cart.NewCartItem(userID, voucherID, qty, uc.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	var cartID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().VoucherByID(ctx, voucherID); derr != nil {
			return derr
		}
		id, derr := tx.Cart().Add(ctx, tx.DB(), item)
		if derr != nil {
			return derr
		}
		cartID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, errs.Mark(err, ErrVoucherNotFound)
		}
		return 0, errs.Mark(err, ErrTransactionFailed)
	}
	return cartID, nil
}

func (uc *cartCommandsImpl) UpdateItem(ctx context.Context, userID, cartID int64, quantity int) error {
	if err := cart.ValidateCartID(cartID); err != nil {
		return errs.Mark(err, ErrValidation)
	}
	qty, err := cart.NewQuantity(quantity)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cart().UpdateQuantity(ctx, tx.DB(), userID, cartID, qty)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCartItemNotFound)
		}
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, userID, cartID int64) error {
	if err := cart.ValidateCartID(cartID); err != nil {
		return errs.Mark(err, ErrValidation)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, derr := tx.Cart().Remove(ctx, tx.DB(), userID, cartID)
		if derr != nil {
			return derr
		}
		if !removed {
			slog.Debug("cart item already absent", "user_id", userID, "cart_id", cartID)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}
