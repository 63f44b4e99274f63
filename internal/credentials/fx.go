package credentials

import (
	"github.com/forkfeed/forkfeed-client/pkg/config"
	"go.uber.org/fx"
)

var Module = fx.Module("credentials",
	fx.Provide(
		fx.Annotate(
			func(cfg *config.Config) (*File, error) {
				return NewFile(cfg.Credentials.Path)
			},
			fx.As(new(Store)),
		),
	),
)
