package components

import (
	"lionrewards/internal/pkg/clock"
	"lionrewards/internal/usecase"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPointsCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewHistoryCommands,
		commands.NewVideoWatchCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPointsQueries,
		queries.NewCartQueries,
		queries.NewHistoryQueries,
		queries.NewVideoTaskQueries,
		queries.NewVoucherQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
