package components

import (
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/clock"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/config"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewLinkCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewAvailabilityQueries,
		queries.NewLinkQueries,
		queries.NewBookingQueries,
	),
)

func NewAvailabilityQueries(
	cfg config.Config,
	links queries.LinkReadStore,
	bookings queries.BookingReadStore,
	busy queries.BusyReadStore,
	availabilityCache queries.AvailabilityCache,
	clk clock.Clock,
) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(links, bookings, busy, availabilityCache, clk, cfg.Booking.SlotStepMinutes)
}
