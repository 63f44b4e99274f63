package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/forkfeed/forkfeed-client/internal/api"
	"github.com/forkfeed/forkfeed-client/internal/api/apiimpl"
	"github.com/forkfeed/forkfeed-client/internal/credentials"
	"github.com/forkfeed/forkfeed-client/internal/domain"
	"github.com/forkfeed/forkfeed-client/internal/refresher"
	"github.com/forkfeed/forkfeed-client/internal/stores/account"
	"github.com/forkfeed/forkfeed-client/internal/stores/feed"
	stores "github.com/forkfeed/forkfeed-client/internal/stores/fx"
	"github.com/forkfeed/forkfeed-client/pkg/config"
	"github.com/forkfeed/forkfeed-client/pkg/formatter"
	"github.com/forkfeed/forkfeed-client/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	credentials.Module,
	fx.Provide(
		fx.Annotate(
			apiimpl.New,
			fx.As(new(api.Client)),
		),
	),
	stores.Module,
	fx.Provide(refresher.New),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config,
	accountStore account.Store, feedStore feed.Store, r *refresher.Refresher) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			accountStore.Query(ctx)
			if acc, ok := accountStore.Current(); ok {
				log.Info("Session restored",
					"email", acc.Email,
					"followers", formatter.FormatNumber(acc.Followers),
					"likes", formatter.FormatNumber(acc.Likes),
				)
			} else {
				log.Info("No stored session, starting anonymous")
			}

			// Warm the feed cache so the first consumer sees data.
			feedStore.QueryPosts(ctx, domain.Channels[0], "")
			log.Info("Feed warmed", "channel", domain.Channels[0], "posts", len(feedStore.Posts()))

			if err := r.Start(ctx); err != nil {
				log.Error("Failed to start notification refresher", "error", err)
				return err
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return r.Shutdown()
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
