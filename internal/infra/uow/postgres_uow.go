package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"lionrewards/internal/infra/readstore"
	"lionrewards/internal/infra/repository"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/config"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	backoff    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) shared.UnitOfWork {
	maxRetries := cfg.TxMaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: maxRetries,
		backoff:    100 * time.Millisecond,
	}
}

// ReadCommitted plus explicit row locks serialises writers per user
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, ErrTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, ErrTransactionCommit)
		}

		// context.Background so a cancelled request still releases its connection cleanly
		if rollbackErr := pgxTx.Rollback(context.Background()); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			if u.maxRetries > 0 {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, ErrMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, u.backoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return ErrMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.Background()); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	pointsRepo     shared.PointsRepository
	cartRepo       shared.CartRepository
	redemptionRepo shared.RedemptionRepository
	historyRepo    shared.HistoryRepository
	watchRepo      shared.WatchRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Points() shared.PointsRepository {
	if t.pointsRepo == nil {
		t.pointsRepo = repository.NewPointsRepository(t.uow.q)
	}
	return t.pointsRepo
}

func (t *pgTx) Cart() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.uow.q)
	}
	return t.cartRepo
}

func (t *pgTx) Redemptions() shared.RedemptionRepository {
	if t.redemptionRepo == nil {
		t.redemptionRepo = repository.NewRedemptionRepository(t.uow.q)
	}
	return t.redemptionRepo
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.uow.q)
	}
	return t.historyRepo
}

func (t *pgTx) Watches() shared.WatchRepository {
	if t.watchRepo == nil {
		t.watchRepo = repository.NewWatchRepository(t.uow.q)
	}
	return t.watchRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	voucherStore   *readstore.VoucherReadStore
	videoTaskStore *readstore.VideoTaskReadStore
}

func (r *commandReads) videoTasks() *readstore.VideoTaskReadStore {
	if r.videoTaskStore == nil {
		r.videoTaskStore = readstore.NewVideoTaskReadStore(r.uow.q, r.dbtx)
	}
	return r.videoTaskStore
}

func (r *commandReads) VoucherByID(ctx context.Context, id int64) (*shared.VoucherSnapshot, error) {
	if r.voucherStore == nil {
		r.voucherStore = readstore.NewVoucherReadStore(r.uow.q, r.dbtx)
	}

	voucher, err := r.voucherStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.VoucherSnapshot{
		ID:         voucher.VoucherID,
		Title:      voucher.Title,
		CostPoints: voucher.CostPoints,
	}, nil
}

func (r *commandReads) VideoTaskByID(ctx context.Context, id int64) (*shared.VideoTaskSnapshot, error) {
	task, err := r.videoTasks().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.VideoTaskSnapshot{
		ID:         task.TaskID,
		Title:      task.Title,
		YoutubeID:  task.YoutubeID,
		PointValue: task.PointValue,
	}, nil
}

func (r *commandReads) HasWatched(ctx context.Context, userID, taskID int64) (bool, error) {
	return r.videoTasks().HasWatched(ctx, userID, taskID)
}
