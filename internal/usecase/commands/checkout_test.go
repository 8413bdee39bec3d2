//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/domain/history"
	"lionrewards/internal/domain/points"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const checkoutUser int64 = 7

func twoLineCart() *cart.Cart {
	return cart.Reconstruct(checkoutUser, []cart.Line{
		{CartID: 1, VoucherID: 1, Title: "Coffee", CostPoints: 10, Quantity: 2},
		{CartID: 2, VoucherID: 2, Title: "Lunch", CostPoints: 15, Quantity: 1},
	})
}

func TestCheckout_Success(t *testing.T) {
	ctx := context.Background()
	f := newUoWFixture(t)
	uc := commands.NewCheckoutCommands(f.uow, f.clock)

	var granted []uuid.UUID
	var appended []history.Entry

	f.expectWithin()
	gomock.InOrder(
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).
			Return(points.NewAccount(checkoutUser, 100), nil),
		f.cart.EXPECT().LockByUser(gomock.Any(), gomock.Any(), checkoutUser).Return(twoLineCart(), nil),
		f.points.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), checkoutUser, points.Debit(35)).Return(int64(65), nil),
	)
	f.redemptions.EXPECT().Grant(gomock.Any(), gomock.Any(), gomock.Any(), checkoutUser, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ int64, _ cart.Line, _ time.Time) error {
			granted = append(granted, id)
			return nil
		}).Times(2)
	f.history.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e history.Entry) error {
			appended = append(appended, e)
			return nil
		}).Times(2)
	f.cart.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, c *cart.Cart) (int64, error) {
			// only the lines read under the lock are removed
			assert.Equal(t, []int64{1, 2}, c.CartIDs())
			assert.Equal(t, checkoutUser, c.UserID())
			return int64(2), nil
		})

	res, err := uc.Checkout(ctx, checkoutUser)
	require.NoError(t, err)

	assert.Equal(t, int64(35), res.TotalCost)
	assert.Equal(t, int64(65), res.Balance)
	assert.NotEqual(t, uuid.Nil, res.RedemptionID)
	if diff := cmp.Diff(twoLineCart().Lines(), res.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, granted, 2)
	assert.Equal(t, res.RedemptionID, granted[0])
	assert.Equal(t, res.RedemptionID, granted[1])

	require.Len(t, appended, 2)
	for _, e := range appended {
		require.NotNil(t, e.RedemptionID())
		assert.Equal(t, res.RedemptionID, *e.RedemptionID())
		assert.Equal(t, fixedNow, e.RedeemedAt())
	}
	assert.Equal(t, "Coffee", appended[0].Title())
	assert.Equal(t, int32(2), appended[0].Quantity())
	assert.Equal(t, "Lunch", appended[1].Title())
}

func TestCheckout_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewCheckoutCommands(f.uow, f.clock)

		f.expectWithin()
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).Return(points.NewAccount(checkoutUser, 100), nil)
		f.cart.EXPECT().LockByUser(gomock.Any(), gomock.Any(), checkoutUser).Return(cart.Reconstruct(checkoutUser, nil), nil)

		_, err := uc.Checkout(ctx, checkoutUser)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrEmptyCart))
		assert.False(t, errs.Is(err, commands.ErrCheckoutFailed))
	})

	t.Run("insufficient points writes nothing", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewCheckoutCommands(f.uow, f.clock)

		f.expectWithin()
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).Return(points.NewAccount(checkoutUser, 30), nil)
		f.cart.EXPECT().LockByUser(gomock.Any(), gomock.Any(), checkoutUser).Return(twoLineCart(), nil)
		// no ApplyDelta, Grant, Append or Clear expected

		_, err := uc.Checkout(ctx, checkoutUser)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrInsufficientPoints))
		assert.True(t, errs.Is(err, points.ErrInsufficientPoints))
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewCheckoutCommands(f.uow, f.clock)

		f.expectWithin()
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).Return(points.NewAccount(checkoutUser, 35), nil)
		f.cart.EXPECT().LockByUser(gomock.Any(), gomock.Any(), checkoutUser).Return(twoLineCart(), nil)
		f.points.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), checkoutUser, points.Debit(35)).Return(int64(0), nil)
		f.redemptions.EXPECT().Grant(gomock.Any(), gomock.Any(), gomock.Any(), checkoutUser, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.history.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.cart.EXPECT().Clear(gomock.Any(), gomock.Any(), twoLineCart()).Return(int64(2), nil)

		res, err := uc.Checkout(ctx, checkoutUser)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Balance)
	})
}

func TestCheckout_FailuresAreMarked(t *testing.T) {
	ctx := context.Background()
	dbErr := infra.WrapRepoErr("failed to append history entry", errors.New("disk full"))

	t.Run("history write fails after the debit", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewCheckoutCommands(f.uow, f.clock)

		f.expectWithin()
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).Return(points.NewAccount(checkoutUser, 100), nil)
		f.cart.EXPECT().LockByUser(gomock.Any(), gomock.Any(), checkoutUser).Return(twoLineCart(), nil)
		f.points.EXPECT().ApplyDelta(gomock.Any(), gomock.Any(), checkoutUser, gomock.Any()).Return(int64(65), nil)
		f.redemptions.EXPECT().Grant(gomock.Any(), gomock.Any(), gomock.Any(), checkoutUser, gomock.Any(), gomock.Any()).Return(nil)
		f.history.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)
		// Clear never runs; the unit of work rolls back the debit and the grant

		res, err := uc.Checkout(ctx, checkoutUser)
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, errs.Is(err, commands.ErrCheckoutFailed))
	})

	t.Run("lock fails", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewCheckoutCommands(f.uow, f.clock)

		f.expectWithin()
		f.points.EXPECT().LockBalance(gomock.Any(), gomock.Any(), checkoutUser).Return(points.Account{}, dbErr)

		_, err := uc.Checkout(ctx, checkoutUser)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCheckoutFailed))
	})
}
