//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"lionrewards/internal/domain/points"
	"lionrewards/internal/domain/videotask"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompleteTask(t *testing.T) {
	ctx := context.Background()
	const userID, taskID int64 = 7, 3
	task := &shared.VideoTaskSnapshot{ID: taskID, Title: "Our culture", YoutubeID: "y6120QOlsfU", PointValue: 15}

	t.Run("success: first completion credits the reward", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		f.reads.EXPECT().HasWatched(gomock.Any(), userID, taskID).Return(false, nil)
		f.expectWithin()
		f.reads.EXPECT().VideoTaskByID(gomock.Any(), taskID).Return(task, nil)
		gomock.InOrder(
			f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), userID).Return(points.NewAccount(userID, 100), nil),
			f.watches.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, w videotask.Watch) error {
					assert.Equal(t, userID, w.UserID())
					assert.Equal(t, taskID, w.TaskID())
					assert.Equal(t, fixedNow, w.WatchedAt())
					return nil
				}),
			f.points.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), userID, points.Credit(15)).Return(int64(115), nil),
		)

		res, err := uc.CompleteTask(ctx, userID, taskID)
		require.NoError(t, err)
		assert.Equal(t, &commands.CompleteTaskResult{TaskID: taskID, Added: 15, Balance: 115}, res)
	})

	t.Run("already watched: no transaction is opened", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		f.reads.EXPECT().HasWatched(gomock.Any(), userID, taskID).Return(true, nil)

		_, err := uc.CompleteTask(ctx, userID, taskID)
		assert.True(t, errs.Is(err, commands.ErrAlreadyCompleted))
	})

	t.Run("concurrent duplicate: key violation means already completed", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		f.reads.EXPECT().HasWatched(gomock.Any(), userID, taskID).Return(false, nil)
		f.expectWithin()
		f.reads.EXPECT().VideoTaskByID(gomock.Any(), taskID).Return(task, nil)
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), userID).Return(points.NewAccount(userID, 100), nil)
		f.watches.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to record video watch", &pgconn.PgError{Code: "23505"}))

		_, err := uc.CompleteTask(ctx, userID, taskID)
		assert.True(t, errs.Is(err, commands.ErrAlreadyCompleted))
	})

	t.Run("unknown task", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		f.reads.EXPECT().HasWatched(gomock.Any(), userID, int64(99)).Return(false, nil)
		f.expectWithin()
		f.reads.EXPECT().VideoTaskByID(gomock.Any(), int64(99)).
			Return(nil, infra.WrapRepoErr("video task not found", nil, infra.KindNotFound))

		_, err := uc.CompleteTask(ctx, userID, 99)
		assert.True(t, errs.Is(err, commands.ErrVideoTaskNotFound))
	})

	t.Run("invalid task id", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		_, err := uc.CompleteTask(ctx, userID, 0)
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("credit failure is a transaction failure", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewVideoWatchCommands(f.uow, f.clock)

		f.reads.EXPECT().HasWatched(gomock.Any(), userID, taskID).Return(false, nil)
		f.expectWithin()
		f.reads.EXPECT().VideoTaskByID(gomock.Any(), taskID).Return(task, nil)
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), userID).Return(points.NewAccount(userID, 0), nil)
		f.watches.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.points.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), userID, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to apply points delta", errors.New("boom")))

		_, err := uc.CompleteTask(ctx, userID, taskID)
		assert.True(t, errs.Is(err, commands.ErrTransactionFailed))
		assert.False(t, errs.Is(err, commands.ErrAlreadyCompleted))
	})
}
