package main // Entry point package

import (
	"log" // Logging library
	"os"
	"path/filepath"

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/NOBU6477/tomotrip-platform/internal/config"
	"github.com/NOBU6477/tomotrip-platform/internal/database"
	"github.com/NOBU6477/tomotrip-platform/internal/handler"
	"github.com/NOBU6477/tomotrip-platform/internal/middleware"
	"github.com/NOBU6477/tomotrip-platform/internal/queue"
	"github.com/NOBU6477/tomotrip-platform/internal/repository"
	"github.com/NOBU6477/tomotrip-platform/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins

	cfg := config.Load()

	// Pick the storage backend.  The memory driver needs no external
	// services; mysql opens a pool and ensures the schema exists.
	var store repository.Storage
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("database open failed: %v", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(db); err != nil {
			log.Fatalf("schema setup failed: %v", err)
		}
		store = repository.NewDatabaseStorage(db)
	default:
		store = repository.NewMemoryStorage()
	}
	log.Printf("storage driver: %s", cfg.StoreDriver)

	// Redis is optional; without it rate limiting and response caching
	// turn themselves off.
	rdb := config.NewRedisClient(cfg)
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	// The broker is optional too.  With no broker configured the activity
	// events are skipped and aggregate counters simply stay at their
	// stored values.
	queueEnabled := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	if queueEnabled {
		go func() {
			if err := queue.StartActivityConsumer(store); err != nil {
				log.Printf("activity consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	catalogHandler := handler.NewCatalogHandler(store, config.PersistCatalogFilters())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, store), cfg.JWTSecret)
	router.RegisterAPI(e, router.APIHandlers{
		Stores:       handler.NewStoreHandler(store),
		Guides:       handler.NewGuideHandler(store),
		Programs:     handler.NewProgramHandler(store),
		Reservations: handler.NewReservationHandler(store, queueEnabled),
		Reviews:      handler.NewReviewHandler(store, queueEnabled),
	})
	router.RegisterCatalog(e, catalogHandler, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterStatic(e, cfg.PublicDir)

	e.HTTPErrorHandler = router.NotFoundHandler(filepath.Join(cfg.PublicDir, "index.html"))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
