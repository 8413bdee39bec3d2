package commands

import (
	"context"
	"log/slog"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/domain/history"
	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

type CheckoutResult struct {
	RedemptionID uuid.UUID
	TotalCost    int64
	Balance      int64
	Items        []cart.Line
}

type CheckoutCommands interface {
	// Checkout settles the whole cart in one transaction: debit, voucher grants, history, cart clear.
	Checkout(ctx context.Context, userID int64) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	newID func() uuid.UUID
}

func NewCheckoutCommands(uow shared.UnitOfWork, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{uow: uow, clock: clk, newID: uuid.New}
}

func (uc *checkoutCommandsImpl) Checkout(ctx context.Context, userID int64) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := uc.settle(ctx, tx, userID)
		if derr != nil {
			return derr
		}
		result = res
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrEmptyCart) || errs.Is(err, ErrInsufficientPoints) {
			return nil, err
		}
		slog.Error("checkout rolled back", "user_id", userID, "error", err.Error())
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	slog.Info("checkout completed",
		"user_id", userID,
		"redemption_id", result.RedemptionID.String(),
		"total_cost", result.TotalCost,
		"items", len(result.Items))
	return result, nil
}

// settle must run inside a transaction; lock order is points row, then cart rows.
func (uc *checkoutCommandsImpl) settle(ctx context.Context, tx shared.Tx, userID int64) (*CheckoutResult, error) {
	account, err := tx.Points().LockBalance(ctx, tx.DB(), userID)
	if err != nil {
		return nil, err
	}
	c, err := tx.Cart().LockByUser(ctx, tx.DB(), userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total := c.Total()
	debit, err := account.Withdraw(total)
	if err != nil {
		return nil, errs.Mark(err, ErrInsufficientPoints)
	}
	balance, err := tx.Points().ApplyDelta(ctx, tx.DB(), userID, debit)
	if err != nil {
		return nil, err
	}

	redemptionID := uc.newID()
	now := uc.clock.Now()
	for _, line := range c.Lines() {
		if err := tx.Redemptions().Grant(ctx, tx.DB(), redemptionID, userID, line, now); err != nil {
			return nil, err
		}
		entry, err := history.NewEntry(userID, line.VoucherID, line.Title, int(line.Quantity), now)
		if err != nil {
			return nil, err
		}
		if err := tx.History().Append(ctx, tx.DB(), entry.WithRedemption(redemptionID)); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Cart().Clear(ctx, tx.DB(), c); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		RedemptionID: redemptionID,
		TotalCost:    total,
		Balance:      balance,
		Items:        c.Lines(),
	}, nil
}
