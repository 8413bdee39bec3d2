package components

import (
	"lionrewards/internal/infra/readstore"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/infra/uow"
	"lionrewards/internal/pkg/config"
	"lionrewards/internal/usecase/queries"
	"lionrewards/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Points
		fx.Annotate(
			readstore.NewPointsReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.PointsReadStore)),
		),
		// Cart
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.CartReadStore)),
		),
		// History
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.HistoryReadStore)),
		),
		// VideoTask
		fx.Annotate(
			readstore.NewVideoTaskReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.VideoTaskReadStore)),
		),
		// Voucher
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.From(new(*sqlc.Queries)),
			fx.As(new(queries.VoucherReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.DB)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
