package readstore

import (
	"context"

	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
)

//go:generate mockgen -source=points.go -destination=../../../tests/mock/readstore/points.go -package=readstoremock

type PointsReadQueries interface {
	GetPointsBalance(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
}

type PointsReadStore struct {
	queries PointsReadQueries
	db      sqlc.DBTX
}

func NewPointsReadStore(queries PointsReadQueries, db sqlc.DBTX) *PointsReadStore {
	return &PointsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PointsReadStore) FindBalance(ctx context.Context, userID int64) (int64, error) {
	balance, err := r.queries.GetPointsBalance(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// account not created yet
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to get points balance", err)
	}
	return balance, nil
}
