//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/usecase/shared"
	sharedmock "lionrewards/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// uowFixture wires a mocked unit of work whose transaction hands out mocked repositories.
type uowFixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	points      *sharedmock.MockPointsRepository
	cart        *sharedmock.MockCartRepository
	redemptions *sharedmock.MockRedemptionRepository
	history     *sharedmock.MockHistoryRepository
	watches     *sharedmock.MockWatchRepository
	clock       clock.Clock
}

func newUoWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &uowFixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		points:      sharedmock.NewMockPointsRepository(ctrl),
		cart:        sharedmock.NewMockCartRepository(ctrl),
		redemptions: sharedmock.NewMockRedemptionRepository(ctrl),
		history:     sharedmock.NewMockHistoryRepository(ctrl),
		watches:     sharedmock.NewMockWatchRepository(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Points().Return(f.points).AnyTimes()
	f.tx.EXPECT().Cart().Return(f.cart).AnyTimes()
	f.tx.EXPECT().Redemptions().Return(f.redemptions).AnyTimes()
	f.tx.EXPECT().History().Return(f.history).AnyTimes()
	f.tx.EXPECT().Watches().Return(f.watches).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	return f
}

// expectWithin runs the callback against the mocked transaction, returning its error like a rollback would.
func (f *uowFixture) expectWithin() *gomock.Call {
	return f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}
