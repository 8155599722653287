package components

import (
	"github.com/hificopy/axolopcrm-sub008/internal/infra"
	"github.com/hificopy/axolopcrm-sub008/internal/infra/cache"
	"github.com/hificopy/axolopcrm-sub008/internal/infra/readstore"
	"github.com/hificopy/axolopcrm-sub008/internal/infra/uow"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/config"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/commands"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewLinkReadStore,
			fx.As(new(queries.LinkReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewBusyReadStore,
			fx.As(new(queries.BusyReadStore)),
		),
		NewAvailabilityCache,
		NewAvailabilityInvalidator,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

// NewAvailabilityCache returns nil when caching is disabled; the query side
// treats a nil cache as a permanent miss.
func NewAvailabilityCache(cfg config.Config, client *redis.Client) queries.AvailabilityCache {
	if cfg.Booking.DisableCache {
		return nil
	}
	return cache.NewAvailabilityCache(client, cfg.Booking.AvailabilityTTL)
}

// NewAvailabilityInvalidator returns the interface directly so the disabled
// case is a true nil, not a typed-nil pointer boxed in an interface.
func NewAvailabilityInvalidator(cfg config.Config, client *redis.Client) commands.AvailabilityInvalidator {
	if cfg.Booking.DisableCache {
		return nil
	}
	return cache.NewAvailabilityCache(client, cfg.Booking.AvailabilityTTL)
}
