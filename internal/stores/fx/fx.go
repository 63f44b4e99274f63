package fx

import (
	"github.com/forkfeed/forkfeed-client/internal/stores/account"
	"github.com/forkfeed/forkfeed-client/internal/stores/feed"
	"github.com/forkfeed/forkfeed-client/internal/stores/notifications"
	"go.uber.org/fx"
)

var Module = fx.Options(
	account.Module,
	feed.Module,
	notifications.Module,
)
