package readstore

import (
	"context"

	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
	"lionrewards/internal/usecase/queries"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/readstore/voucher.go -package=readstoremock

type VoucherReadQueries interface {
	ListVouchers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vouchers, error)
	GetVoucherByID(ctx context.Context, db sqlc.DBTX, voucherID int64) (sqlc.Vouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) List(ctx context.Context) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}
	vouchers := make([]*queries.VoucherView, 0, len(rows))
	for _, row := range rows {
		vouchers = append(vouchers, toVoucherView(row))
	}
	return vouchers, nil
}

func (r *VoucherReadStore) FindByID(ctx context.Context, voucherID int64) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByID(ctx, r.db, voucherID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher", err)
	}
	return toVoucherView(row), nil
}

func toVoucherView(row sqlc.Vouchers) *queries.VoucherView {
	return &queries.VoucherView{
		VoucherID:   row.VoucherID,
		Title:       row.Title,
		Description: row.Description,
		CostPoints:  int64(row.CostPoints),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
