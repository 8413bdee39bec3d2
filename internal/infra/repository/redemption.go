package repository

import (
	"context"
	"time"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=redemption.go -destination=../../../tests/mock/repository/redemption.go -package=repositorymock

type RedemptionWriteQueries interface {
	InsertUserVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertUserVoucherParams) error
}

type RedemptionRepository struct {
	queries RedemptionWriteQueries
}

func NewRedemptionRepository(queries RedemptionWriteQueries) *RedemptionRepository {
	return &RedemptionRepository{queries: queries}
}

func (r *RedemptionRepository) Grant(ctx context.Context, tx sqlc.DBTX, redemptionID uuid.UUID, userID int64, line cart.Line, redeemedAt time.Time) error {
	err := r.queries.InsertUserVoucher(ctx, tx, sqlc.InsertUserVoucherParams{
		RedemptionID: redemptionID,
		UserID:       userID,
		VoucherID:    line.VoucherID,
		Quantity:     line.Quantity,
		RedeemedAt:   pgconv.TimeToPgtype(redeemedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert user voucher", err)
	}
	return nil
}
