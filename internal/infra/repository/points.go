package repository

import (
	"context"

	"lionrewards/internal/domain/points"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=points.go -destination=../../../tests/mock/repository/points.go -package=repositorymock

type PointsWriteQueries interface {
	EnsurePointsAccount(ctx context.Context, db sqlc.DBTX, userID int64) error
	LockPointsBalance(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
	ApplyPointsDelta(ctx context.Context, db sqlc.DBTX, arg sqlc.ApplyPointsDeltaParams) (int64, error)
}

type PointsRepository struct {
	queries PointsWriteQueries
}

func NewPointsRepository(queries PointsWriteQueries) *PointsRepository {
	return &PointsRepository{queries: queries}
}

func (r *PointsRepository) LockBalance(ctx context.Context, tx sqlc.DBTX, userID int64) (points.Account, error) {
	// FOR UPDATE only locks rows that exist
	if err := r.queries.EnsurePointsAccount(ctx, tx, userID); err != nil {
		return points.Account{}, infra.WrapRepoErr("failed to ensure points account", err)
	}
	balance, err := r.queries.LockPointsBalance(ctx, tx, userID)
	if err != nil {
		return points.Account{}, infra.WrapRepoErr("failed to lock points balance", err)
	}
	return points.NewAccount(userID, balance), nil
}

func (r *PointsRepository) ApplyDelta(ctx context.Context, tx sqlc.DBTX, userID int64, delta points.Delta) (int64, error) {
	balance, err := r.queries.ApplyPointsDelta(ctx, tx, sqlc.ApplyPointsDeltaParams{
		UserID: userID,
		Delta:  delta.Value(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to apply points delta", err)
	}
	return balance, nil
}
