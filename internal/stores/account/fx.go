package account

import (
	"go.uber.org/fx"
)

var Module = fx.Module("account_store",
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
