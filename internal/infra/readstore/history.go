package readstore

import (
	"context"

	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
	"lionrewards/internal/usecase/queries"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/readstore/history.go -package=readstoremock

type HistoryReadQueries interface {
	ListHistoryByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListHistoryByUserRow, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) FindByUser(ctx context.Context, userID int64) ([]*queries.HistoryEntryView, error) {
	rows, err := r.queries.ListHistoryByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history", err)
	}
	entries := make([]*queries.HistoryEntryView, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &queries.HistoryEntryView{
			HistoryID:    row.HistoryID,
			RedemptionID: pgconv.UUIDPtrFromPgtype(row.RedemptionID),
			VoucherID:    row.VoucherID,
			VoucherTitle: row.VoucherTitle,
			Quantity:     row.Quantity,
			RedeemedAt:   pgconv.TimeFromPgtype(row.RedeemedAt),
		})
	}
	return entries, nil
}
