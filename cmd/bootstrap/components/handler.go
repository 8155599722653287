package components

import (
	"github.com/hificopy/axolopcrm-sub008/internal/handler"
	"github.com/hificopy/axolopcrm-sub008/internal/handler/api"
	"github.com/hificopy/axolopcrm-sub008/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewLinkHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
