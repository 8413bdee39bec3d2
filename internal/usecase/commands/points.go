package commands

import (
	"context"
	"log/slog"

	"lionrewards/internal/domain/points"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"
)

//go:generate mockgen -source=points.go -destination=../../../tests/mock/commands/points.go -package=commandsmock

type PointsCommands interface {
	// ApplyDelta adds a signed amount to the balance and returns the new balance.
	ApplyDelta(ctx context.Context, userID int64, delta float64) (int64, error)
}

type pointsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPointsCommands(uow shared.UnitOfWork) PointsCommands {
	return &pointsCommandsImpl{uow: uow}
}

func (uc *pointsCommandsImpl) ApplyDelta(ctx context.Context, userID int64, delta float64) (int64, error) {
	if err := points.ValidateUserID(userID); err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}
	d, err := points.NewDelta(delta)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	var balance int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Points().ApplyDelta(ctx, tx.DB(), userID, d)
		if derr != nil {
			return derr
		}
		balance = b
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrTransactionFailed)
	}

	slog.Debug("points delta applied", "user_id", userID, "delta", d.Value(), "balance", balance)
	return balance, nil
}
