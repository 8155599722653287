package bootstrap

import (
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
