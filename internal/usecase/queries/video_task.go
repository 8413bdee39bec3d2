package queries

import (
	"context"

	"lionrewards/internal/domain/videotask"
	"lionrewards/internal/infra"
	"lionrewards/internal/pkg/errs"
)

//go:generate mockgen -source=video_task.go -destination=../../../tests/mock/queries/video_task.go -package=queriesmock

var ErrVideoTaskNotFound = errs.New("video task not found")

type VideoTaskReadStore interface {
	List(ctx context.Context) ([]*VideoTaskView, error)
	FindByID(ctx context.Context, taskID int64) (*VideoTaskView, error)
}

type VideoTaskQueries interface {
	List(ctx context.Context) ([]*VideoTaskView, error)
	Get(ctx context.Context, taskID int64) (*VideoTaskView, error)
}

type videoTaskQueriesImpl struct {
	readStore VideoTaskReadStore
}

func NewVideoTaskQueries(readStore VideoTaskReadStore) VideoTaskQueries {
	return &videoTaskQueriesImpl{readStore: readStore}
}

func (q *videoTaskQueriesImpl) List(ctx context.Context) ([]*VideoTaskView, error) {
	tasks, err := q.readStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*VideoTaskView{}
	}
	return tasks, nil
}

func (q *videoTaskQueriesImpl) Get(ctx context.Context, taskID int64) (*VideoTaskView, error) {
	if err := videotask.ValidateTaskID(taskID); err != nil {
		return nil, err
	}
	task, err := q.readStore.FindByID(ctx, taskID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVideoTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
