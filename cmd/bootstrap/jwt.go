package bootstrap

import (
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/config"
	"github.com/hificopy/axolopcrm-sub008/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTManager,
	),
)

func NewJWTManager(cfg config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret)
}
