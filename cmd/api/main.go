package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountsHttp "peakdash-service/internal/accounts/adapters/http/fiber"
	accountsRepoPg "peakdash-service/internal/accounts/adapters/postgres"
	accountsUsecase "peakdash-service/internal/accounts/core/usecase"

	analyticsHttp "peakdash-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "peakdash-service/internal/analytics/adapters/postgres"
	analyticsCache "peakdash-service/internal/analytics/adapters/redis"
	analyticsPorts "peakdash-service/internal/analytics/core/ports"
	analyticsUsecase "peakdash-service/internal/analytics/core/usecase"

	checkinsHttp "peakdash-service/internal/checkins/adapters/http/fiber"
	checkinsRepoPg "peakdash-service/internal/checkins/adapters/postgres"
	checkinsUsecase "peakdash-service/internal/checkins/core/usecase"

	eventsHttp "peakdash-service/internal/events/adapters/http/fiber"
	eventsRepoPg "peakdash-service/internal/events/adapters/postgres"
	eventsUsecase "peakdash-service/internal/events/core/usecase"

	"peakdash-service/internal/config"
	"peakdash-service/internal/logging"
	"peakdash-service/internal/observability"
	"peakdash-service/internal/storage/postgres"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "peakdash-service/docs"
)

// @title PeakDash API
// @version 1.0
// @description Event analytics, accounts and check-ins for the PeakDash app.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	// DB connection
	db, err := postgres.Open(startCtx, cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(startCtx, db); err != nil {
		logging.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	accountRepository := accountsRepoPg.NewAccountRepository(accountsRepoPg.NewSQLDB(db))
	eventRepository := eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db), cfg.Analytics.Collection)
	checkInRepository := checkinsRepoPg.NewCheckInRepository(checkinsRepoPg.NewSQLDB(db))

	var documentReader analyticsPorts.DocumentReaderPort = analyticsRepoPg.NewDocumentReader(analyticsRepoPg.NewSQLDB(db))
	if cfg.CacheEnabled() {
		rdb, err := analyticsCache.Dial(startCtx, cfg.Redis.Addr)
		if err != nil {
			logging.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		documentReader = analyticsCache.NewCachedReader(documentReader, rdb, cfg.Analytics.CacheTTL)
		logging.Info().Dur("ttl", cfg.Analytics.CacheTTL).Msg("analytics snapshot cache enabled")
	}

	// Usecases
	authUC := accountsUsecase.NewAuthUseCase(accountRepository, accountRepository, accountsUsecase.AuthOptions{
		Secret:      cfg.Auth.JWTSecret,
		SessionTTL:  cfg.Auth.SessionTTL,
		AdminEmails: cfg.Auth.AdminEmails,
	})
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	dashboardUC := analyticsUsecase.NewGetDashboardUseCase(documentReader, cfg.Analytics.Collection)
	checkInUC := checkinsUsecase.NewCheckInUseCase(checkInRepository, cfg.CheckIns.FetchConcurrency)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "peakdash-service",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(observability.RequestContext())
	app.Use(observability.Instrument())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", observability.Handler())

	requireSession := accountsHttp.RequireSession(authUC)

	// auth endpoints
	authHandler := accountsHttp.NewAuthHandler(authUC)
	app.Post("/auth/signup", authHandler.SignUp)
	app.Post("/auth/signin", authHandler.SignIn)
	app.Get("/auth/session", requireSession, authHandler.Session)
	app.Post("/auth/signout", requireSession, authHandler.SignOut)

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC, accountsHttp.SessionFrom)
	app.Post("/events", requireSession, eventsHandler.CreateEvent)
	app.Post("/events/bulk", requireSession, eventsHandler.BulkCreateEvents)

	// check-in endpoints
	checkInHandler := checkinsHttp.NewCheckInHandler(checkInUC, accountsHttp.SessionFrom)
	app.Get("/checkins", requireSession, checkInHandler.ListOwn)
	app.Post("/checkins", requireSession, checkInHandler.Create)

	// admin endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(dashboardUC, accountsHttp.SessionFrom)
	admin := app.Group("/admin", requireSession)
	admin.Get("/analytics", analyticsHandler.GetDashboard)
	admin.Get("/checkins", checkInHandler.ListAll)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := ":" + cfg.Server.Port
	go func() {
		if err := app.Listen(addr); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().Str("addr", addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}

	logging.Info().Msg("server exiting")
}
