package queries

import (
	"context"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher.go -package=queriesmock

type VoucherReadStore interface {
	List(ctx context.Context) ([]*VoucherView, error)
}

type VoucherQueries interface {
	List(ctx context.Context) ([]*VoucherView, error)
}

type voucherQueriesImpl struct {
	readStore VoucherReadStore
}

func NewVoucherQueries(readStore VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{readStore: readStore}
}

func (q *voucherQueriesImpl) List(ctx context.Context) ([]*VoucherView, error) {
	vouchers, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if vouchers == nil {
		vouchers = []*VoucherView{}
	}
	return vouchers, nil
}
