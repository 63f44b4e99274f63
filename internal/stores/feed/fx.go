package feed

import (
	"go.uber.org/fx"
)

var Module = fx.Module("feed_store",
	fx.Provide(
		New,
		fx.Annotate(
			func(s *Impl) Store {
				return s
			},
			fx.As(new(Store)),
		),
	),
)
