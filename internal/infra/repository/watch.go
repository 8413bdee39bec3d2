package repository

import (
	"context"

	"lionrewards/internal/domain/videotask"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
)

//go:generate mockgen -source=watch.go -destination=../../../tests/mock/repository/watch.go -package=repositorymock

type WatchWriteQueries interface {
	InsertVideoWatch(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVideoWatchParams) error
}

type WatchRepository struct {
	queries WatchWriteQueries
}

func NewWatchRepository(queries WatchWriteQueries) *WatchRepository {
	return &WatchRepository{queries: queries}
}

// Record fails with KindDuplicateKey when the (user, task) pair was already recorded.
func (r *WatchRepository) Record(ctx context.Context, tx sqlc.DBTX, watch videotask.Watch) error {
	err := r.queries.InsertVideoWatch(ctx, tx, sqlc.InsertVideoWatchParams{
		UserID:    watch.UserID(),
		TaskID:    watch.TaskID(),
		WatchedAt: pgconv.TimeToPgtype(watch.WatchedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record video watch", err)
	}
	return nil
}
