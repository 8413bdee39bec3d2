package readstore

import (
	"context"

	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
	"lionrewards/internal/usecase/queries"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/readstore/cart.go -package=readstoremock

type CartReadQueries interface {
	ListCartItemsByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListCartItemsByUserRow, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) FindByUser(ctx context.Context, userID int64) ([]*queries.CartItemView, error) {
	rows, err := r.queries.ListCartItemsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	items := make([]*queries.CartItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.CartItemView{
			CartID:     row.CartID,
			VoucherID:  row.VoucherID,
			Title:      row.Title,
			CostPoints: int64(row.CostPoints),
			Quantity:   row.Quantity,
			AddedAt:    pgconv.TimeFromPgtype(row.AddedAt),
		})
	}
	return items, nil
}
