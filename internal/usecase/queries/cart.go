package queries

import (
	"context"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart.go -package=queriesmock

type CartReadStore interface {
	FindByUser(ctx context.Context, userID int64) ([]*CartItemView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID int64) (*CartView, error)
}

type cartQueriesImpl struct {
	readStore CartReadStore
}

func NewCartQueries(readStore CartReadStore) CartQueries {
	return &cartQueriesImpl{readStore: readStore}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID int64) (*CartView, error) {
	items, err := q.readStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*CartItemView{}
	}

	var total int64
	for _, it := range items {
		total += it.CostPoints * int64(it.Quantity)
	}
	return &CartView{Items: items, Total: total}, nil
}
