package commands

import (
	"context"
	"log/slog"

	"lionrewards/internal/domain/points"
	"lionrewards/internal/domain/videotask"
	"lionrewards/internal/infra"
	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"
)

//go:generate mockgen -source=video_watch.go -destination=../../../tests/mock/commands/video_watch.go -package=commandsmock

type CompleteTaskResult struct {
	TaskID  int64
	Added   int64
	Balance int64
}

type VideoWatchCommands interface {
	// CompleteTask credits the task's reward at most once per (user, task).
	CompleteTask(ctx context.Context, userID, taskID int64) (*CompleteTaskResult, error)
}

type videoWatchCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVideoWatchCommands(uow shared.UnitOfWork, clk clock.Clock) VideoWatchCommands {
	return &videoWatchCommandsImpl{uow: uow, clock: clk}
}

func (uc *videoWatchCommandsImpl) CompleteTask(ctx context.Context, userID, taskID int64) (*CompleteTaskResult, error) {
	if err := videotask.ValidateTaskID(taskID); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	// Fast path only; the (user_id, task_id) key decides under concurrency.
	watched, err := uc.uow.CommandReads().HasWatched(ctx, userID, taskID)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailed)
	}
	if watched {
		return nil, ErrAlreadyCompleted
	}

	var result *CompleteTaskResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().VideoTaskByID(ctx, taskID)
		if derr != nil {
			return derr
		}
		task, derr := videotask.ReconstructTask(snap.ID, snap.Title, snap.YoutubeID, snap.PointValue)
		if derr != nil {
			return derr
		}

		if _, derr = tx.Points().LockBalance(ctx, tx.DB(), userID); derr != nil {
			return derr
		}
		if derr = tx.Watches().Record(ctx, tx.DB(), videotask.NewWatch(userID, task, uc.clock.Now())); derr != nil {
			return derr
		}
		balance, derr := tx.Points().ApplyDelta(ctx, tx.DB(), userID, points.Credit(task.Reward()))
		if derr != nil {
			return derr
		}

		result = &CompleteTaskResult{TaskID: task.ID(), Added: task.Reward(), Balance: balance}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrAlreadyCompleted)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrVideoTaskNotFound)
		default:
			return nil, errs.Mark(err, ErrTransactionFailed)
		}
	}

	slog.Info("video task reward credited", "user_id", userID, "task_id", taskID, "added", result.Added)
	return result, nil
}
