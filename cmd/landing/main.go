package main

import (
	"context"
	"embed"
	"html/template"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/landing/contact"
	"github.com/dmitrymomot/landing/core/config"
	"github.com/dmitrymomot/landing/core/cookie"
	"github.com/dmitrymomot/landing/core/email"
	"github.com/dmitrymomot/landing/core/health"
	"github.com/dmitrymomot/landing/core/logger"
	"github.com/dmitrymomot/landing/core/router"
	"github.com/dmitrymomot/landing/core/server"
	"github.com/dmitrymomot/landing/core/static"
	redisdb "github.com/dmitrymomot/landing/integration/database/redis"
	"github.com/dmitrymomot/landing/integration/email/postmark"
	"github.com/dmitrymomot/landing/middleware"
	"github.com/dmitrymomot/landing/pkg/ratelimiter"
	"github.com/dmitrymomot/landing/theme"
)

//go:embed templates
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	var log = logger.New(logger.WithDevelopment(cfg.AppName))
	if cfg.isProduction() {
		log = logger.NewFromConfig(cfg.Log, logger.WithProduction(cfg.AppName))
	}

	cookieMgr, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		log.Error("Failed to create cookie manager", logger.Component("cookie"), logger.Error(err))
		os.Exit(1)
	}

	themes := theme.NewStore(cookieMgr)

	// Rate limit storage: Redis when configured, in-memory otherwise.
	var (
		store       ratelimiter.Store
		memStore    *ratelimiter.MemoryStore
		readyChecks []func(context.Context) error
	)
	if cfg.RedisURL != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			ConnectionURL:  cfg.RedisURL,
			RetryAttempts:  3,
			RetryInterval:  5 * time.Second,
			ConnectTimeout: 30 * time.Second,
		})
		if err != nil {
			log.Error("Failed to connect to redis", logger.Component("redis"), logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()

		store = ratelimiter.NewRedis(client)
		readyChecks = append(readyChecks, redisdb.Healthcheck(client))
	} else {
		memStore = ratelimiter.NewMemoryStore(
			ratelimiter.WithMemoryStoreLogger(log.With(logger.Component("ratelimiter"))),
		)
		store = memStore
	}

	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.ContactRateCapacity,
		RefillRate:     cfg.ContactRateRefill,
		RefillInterval: cfg.ContactRateInterval,
	})
	if err != nil {
		log.Error("Failed to create rate limiter", logger.Component("ratelimiter"), logger.Error(err))
		os.Exit(1)
	}

	deliverer, err := buildDeliverer(cfg)
	if err != nil {
		log.Error("Failed to configure delivery", logger.Component("contact"), logger.Error(err))
		os.Exit(1)
	}

	contactSvc := contact.NewService(deliverer)

	templates, err := loadTemplates()
	if err != nil {
		log.Error("Failed to load templates", logger.Component("templates"), logger.Error(err))
		os.Exit(1)
	}

	secHeaders := middleware.BalancedSecurity
	secHeaders.IsDevelopment = !cfg.isProduction()

	r := router.New[*Context](
		router.WithContextFactory[*Context](newContext()),
		router.WithErrorHandler[*Context](errorHandler(templates.error)),
		router.WithMiddleware(
			middleware.RequestID[*Context](),
			middleware.ClientIP[*Context](),
			middleware.SecurityHeadersWithConfig[*Context](secHeaders),
			middleware.LoggingWithLogger[*Context](log.With(logger.Component("http.request"))),
		),
	)

	r.Get("/healthz", health.Liveness)
	r.Get("/readyz", health.Readiness[*Context](log, readyChecks...))

	r.Get("/", homeHandler(templates.home, themes, cookieMgr))
	r.Post("/theme/toggle", themeToggleHandler(themes))

	// Per-field checks back the inline validation on the page; they are
	// cheap and read-only, so they stay outside the submission rate limit.
	r.Post("/contact/validate", validateFieldHandler(contactSvc))

	// The submission endpoint is the only rate-limited route.
	r.Group(func(limited router.Router[*Context]) {
		limited.Use(middleware.RateLimit[*Context](middleware.RateLimitConfig{
			Limiter:    limiter,
			SetHeaders: true,
		}))
		limited.Post("/contact", contactHandler(contactSvc, templates.home, themes, cookieMgr))
	})

	r.Get("/assets/*", static.FS[*Context](
		assetsFS,
		static.WithFSStripPrefix("/assets"),
		static.WithSubFS("assets"),
		static.WithCacheMaxAge(86400),
	))

	eg, ctx := errgroup.WithContext(ctx)

	if memStore != nil {
		eg.Go(memStore.Run(ctx))
	}

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

// buildDeliverer assembles the delivery chain: the simulated deliverer is
// always present, an email copy is added when a provider is configured.
func buildDeliverer(cfg Config) (contact.Deliverer, error) {
	simulated := contact.NewSimulatedDeliverer(
		contact.WithDelay(cfg.DeliveryDelay),
		contact.WithSuccessRate(cfg.DeliverySuccessRate),
	)

	var sender email.Sender
	switch cfg.EmailProvider {
	case "postmark":
		var pmCfg postmark.Config
		config.MustLoad(&pmCfg)
		client, err := postmark.New(pmCfg)
		if err != nil {
			return nil, err
		}
		sender = client
	case "dev":
		sender = email.NewDevSender(cfg.EmailDevDir)
	default:
		return simulated, nil
	}

	emailDeliverer, err := contact.NewEmailDeliverer(sender, cfg.ContactNotifyEmail)
	if err != nil {
		return nil, err
	}
	return contact.MultiDeliverer{simulated, emailDeliverer}, nil
}

// templates holds all parsed templates.
type templates struct {
	home  *template.Template
	error *template.Template
}

// loadTemplates parses the embedded HTML templates against the shared layout.
func loadTemplates() (*templates, error) {
	home, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/home.html")
	if err != nil {
		return nil, err
	}

	errorTmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, err
	}

	return &templates{
		home:  home,
		error: errorTmpl,
	}, nil
}
