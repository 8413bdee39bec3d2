package repository

import (
	"context"

	"lionrewards/internal/domain/history"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/repository/history.go -package=repositorymock

type HistoryWriteQueries interface {
	InsertHistoryEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertHistoryEntryParams) error
}

type HistoryRepository struct {
	queries HistoryWriteQueries
}

func NewHistoryRepository(queries HistoryWriteQueries) *HistoryRepository {
	return &HistoryRepository{queries: queries}
}

func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, entry history.Entry) error {
	var redemptionID pgtype.UUID
	if id := entry.RedemptionID(); id != nil {
		redemptionID = pgconv.UUIDToPgtype(*id)
	}
	err := r.queries.InsertHistoryEntry(ctx, tx, sqlc.InsertHistoryEntryParams{
		RedemptionID: redemptionID,
		UserID:       entry.UserID(),
		VoucherID:    entry.VoucherID(),
		VoucherTitle: entry.Title(),
		Quantity:     entry.Quantity(),
		RedeemedAt:   pgconv.TimeToPgtype(entry.RedeemedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append history entry", err)
	}
	return nil
}
