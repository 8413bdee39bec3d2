package shared

import (
	"context"
	"time"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/domain/history"
	"lionrewards/internal/domain/points"
	"lionrewards/internal/domain/videotask"
	sqlc "lionrewards/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations; every exit path commits or rolls back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one open transaction; writes made through them commit or roll back together.
type Tx interface {
	Points() PointsRepository
	Cart() CartRepository
	Redemptions() RedemptionRepository
	History() HistoryRepository
	Watches() WatchRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	VoucherByID(ctx context.Context, id int64) (*VoucherSnapshot, error)
	VideoTaskByID(ctx context.Context, id int64) (*VideoTaskSnapshot, error)
	HasWatched(ctx context.Context, userID, taskID int64) (bool, error)
}

type PointsRepository interface {
	// LockBalance creates the account row when missing and holds its row lock until the transaction ends.
	LockBalance(ctx context.Context, tx sqlc.DBTX, userID int64) (points.Account, error)
	ApplyDelta(ctx context.Context, tx sqlc.DBTX, userID int64, delta points.Delta) (int64, error)
}

type CartRepository interface {
	Add(ctx context.Context, tx sqlc.DBTX, item *cart.NewItem) (int64, error)
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, userID, cartID int64, quantity cart.Quantity) error
	Remove(ctx context.Context, tx sqlc.DBTX, userID, cartID int64) (bool, error)
	LockByUser(ctx context.Context, tx sqlc.DBTX, userID int64) (*cart.Cart, error)
	Clear(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) (int64, error)
}

type RedemptionRepository interface {
	Grant(ctx context.Context, tx sqlc.DBTX, redemptionID uuid.UUID, userID int64, line cart.Line, redeemedAt time.Time) error
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entry history.Entry) error
}

type WatchRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, watch videotask.Watch) error
}
