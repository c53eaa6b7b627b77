package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikitanikist/saleshub/pkg/clientip"
	"github.com/nikitanikist/saleshub/pkg/config"
	"github.com/nikitanikist/saleshub/pkg/environment"
	"github.com/nikitanikist/saleshub/pkg/httpserver"
	"github.com/nikitanikist/saleshub/pkg/limits"
	"github.com/nikitanikist/saleshub/pkg/logger"
	"github.com/nikitanikist/saleshub/pkg/modules"
	"github.com/nikitanikist/saleshub/pkg/org"
	"github.com/nikitanikist/saleshub/pkg/override"
	"github.com/nikitanikist/saleshub/pkg/pg"
	"github.com/nikitanikist/saleshub/pkg/realtime"
	"github.com/nikitanikist/saleshub/pkg/redis"
	"github.com/nikitanikist/saleshub/pkg/requestid"
	"github.com/nikitanikist/saleshub/pkg/subscription"
	"github.com/nikitanikist/saleshub/pkg/usage"
	"github.com/nikitanikist/saleshub/svc/entitlements"
	"github.com/nikitanikist/saleshub/svc/proxy"
	"github.com/nikitanikist/saleshub/svc/stream"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"saleshub"`

	// PlanCatalogPath switches plan limits from the database to a YAML
	// catalog file, useful for staging experiments without touching rows.
	PlanCatalogPath string `env:"PLAN_CATALOG_PATH"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	var (
		appCfg   appConfig
		pgCfg    pg.Config
		redisCfg redis.Config
		httpCfg  httpserver.Config
		proxyCfg proxy.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&proxyCfg)

	env := environment.Parse(appCfg.Environment)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
			org.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Stores and gates. Usage counts go through the Redis read-through
	// cache; everything else hits Postgres directly.
	subStore := subscription.NewPgStore(pool)
	usageStore := usage.NewCachedStore(usage.NewPgStore(pool), rdb, usage.DefaultCacheTTL)
	aggregator := usage.NewAggregator(usageStore)

	registry := limits.NewRegistry()
	aggregator.Register(registry)

	var limitSource subscription.LimitSource = subStore
	if appCfg.PlanCatalogPath != "" {
		limitSource, err = subscription.NewYAMLLimitSource(appCfg.PlanCatalogPath)
		if err != nil {
			return err
		}
	}

	limitGate := limits.NewGate(subStore, limitSource,
		limits.WithCounters(registry),
		limits.WithNotifier(func(ctx context.Context, d *limits.Denial) {
			log.WarnContext(ctx, "plan limit reached",
				logger.Metric(string(d.Key)),
				slog.String("plan", d.PlanName),
			)
		}),
	)
	moduleGate := modules.NewGate(modules.NewPgStore(pool))
	overrideGate := override.NewGate(override.NewPgStore(pool))

	hub := realtime.NewHub()
	defer hub.Close()

	// Bridge Postgres row-change notifications into the hub so SSE
	// clients see campaign updates without polling.
	listenCtx, stopListener := context.WithCancel(ctx)
	defer stopListener()
	go func() {
		if err := realtime.NewListener(pool, hub, log).Run(listenCtx); err != nil {
			log.ErrorContext(listenCtx, "realtime listener stopped", logger.Error(err))
		}
	}()

	orgMiddleware := org.Middleware(
		// API paths look like /api/orgs/{org}/...; the header wins when set.
		org.NewCompositeResolver(org.NewHeaderResolver(""), org.NewPathResolver(3)),
		org.NewPgProvider(pool),
		org.WithCache(org.NewMemoryCache()),
		org.WithRequireActive(true),
		org.WithLogger(log),
	)

	entitlementsSvc := entitlements.New(limitGate, moduleGate, overrideGate, aggregator, log)
	proxySvc := proxy.New(proxyCfg, proxy.WithLogger(log))
	streamSvc := stream.New(hub, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(env))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(rdb),
	))

	r.Mount("/functions", proxy.Router(proxySvc))

	r.Group(func(api chi.Router) {
		api.Use(orgMiddleware)
		api.Use(org.RequireOrganization(nil))
		api.Route("/api/orgs/{org}", func(orgRoutes chi.Router) {
			orgRoutes.Mount("/", entitlements.Router(entitlementsSvc))
			orgRoutes.Mount("/stream", stream.Router(streamSvc))
		})
	})

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
