package commands

import (
	"context"

	"lionrewards/internal/domain/history"
	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/commands/history.go -package=commandsmock

type HistoryItem struct {
	VoucherID int64
	Title     string
	Quantity  int
}

type HistoryCommands interface {
	LogEntries(ctx context.Context, userID int64, items []HistoryItem) error
}

type historyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHistoryCommands(uow shared.UnitOfWork, clk clock.Clock) HistoryCommands {
	return &historyCommandsImpl{uow: uow, clock: clk}
}

// LogEntries appends every item or none of them.
func (uc *historyCommandsImpl) LogEntries(ctx context.Context, userID int64, items []HistoryItem) error {
	if len(items) == 0 {
		return errs.Mark(history.ErrNoEntries, ErrValidation)
	}

	now := uc.clock.Now()
	entries := make([]history.Entry, 0, len(items))
	for _, it := range items {
		entry, err := history.NewEntry(userID, it.VoucherID, it.Title, it.Quantity, now)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		entries = append(entries, entry)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, entry := range entries {
			if derr := tx.History().Append(ctx, tx.DB(), entry); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}
