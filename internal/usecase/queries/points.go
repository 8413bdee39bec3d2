package queries

import (
	"context"

	"lionrewards/internal/domain/points"
)

//go:generate mockgen -source=points.go -destination=../../../tests/mock/queries/points.go -package=queriesmock

type PointsReadStore interface {
	FindBalance(ctx context.Context, userID int64) (int64, error)
}

type PointsQueries interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
}

type pointsQueriesImpl struct {
	readStore PointsReadStore
}

func NewPointsQueries(readStore PointsReadStore) PointsQueries {
	return &pointsQueriesImpl{readStore: readStore}
}

// GetBalance reads 0 for a user who has never been credited; accounts are created on first write.
func (q *pointsQueriesImpl) GetBalance(ctx context.Context, userID int64) (int64, error) {
	if err := points.ValidateUserID(userID); err != nil {
		return 0, err
	}
	return q.readStore.FindBalance(ctx, userID)
}
