package readstore

import (
	"context"

	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
	"lionrewards/internal/usecase/queries"
)

//go:generate mockgen -source=video_task.go -destination=../../../tests/mock/readstore/video_task.go -package=readstoremock

type VideoTaskReadQueries interface {
	ListVideoTasks(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListVideoTasksRow, error)
	GetVideoTaskByID(ctx context.Context, db sqlc.DBTX, taskID int64) (sqlc.GetVideoTaskByIDRow, error)
	HasWatchedVideoTask(ctx context.Context, db sqlc.DBTX, arg sqlc.HasWatchedVideoTaskParams) (bool, error)
}

type VideoTaskReadStore struct {
	queries VideoTaskReadQueries
	db      sqlc.DBTX
}

func NewVideoTaskReadStore(queries VideoTaskReadQueries, db sqlc.DBTX) *VideoTaskReadStore {
	return &VideoTaskReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VideoTaskReadStore) List(ctx context.Context) ([]*queries.VideoTaskView, error) {
	rows, err := r.queries.ListVideoTasks(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list video tasks", err)
	}
	tasks := make([]*queries.VideoTaskView, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, &queries.VideoTaskView{
			TaskID:     row.TaskID,
			Title:      row.Title,
			YoutubeID:  row.YoutubeID,
			PointValue: row.PointValue,
		})
	}
	return tasks, nil
}

func (r *VideoTaskReadStore) FindByID(ctx context.Context, taskID int64) (*queries.VideoTaskView, error) {
	row, err := r.queries.GetVideoTaskByID(ctx, r.db, taskID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("video task not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get video task", err)
	}
	return &queries.VideoTaskView{
		TaskID:     row.TaskID,
		Title:      row.Title,
		YoutubeID:  row.YoutubeID,
		PointValue: row.PointValue,
	}, nil
}

func (r *VideoTaskReadStore) HasWatched(ctx context.Context, userID, taskID int64) (bool, error) {
	watched, err := r.queries.HasWatchedVideoTask(ctx, r.db, sqlc.HasWatchedVideoTaskParams{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check video watch", err)
	}
	return watched, nil
}
