package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/movie-ticket-booking/internal/booking"
    "github.com/iliyamo/movie-ticket-booking/internal/catalog"
    "github.com/iliyamo/movie-ticket-booking/internal/config"
    "github.com/iliyamo/movie-ticket-booking/internal/handler"
    "github.com/iliyamo/movie-ticket-booking/internal/identity"
    "github.com/iliyamo/movie-ticket-booking/internal/notify"
    "github.com/iliyamo/movie-ticket-booking/internal/payment"
    "github.com/iliyamo/movie-ticket-booking/internal/queue"
    "github.com/iliyamo/movie-ticket-booking/internal/rating"
    "github.com/iliyamo/movie-ticket-booking/internal/router"
)

func main() {
    // Load .env when present; real deployments set the environment
    // directly and the file is simply absent.
    _ = godotenv.Load()
    cfg := config.Load()

    // Catalog data source: in-memory fixtures by default, MySQL when
    // configured.  The MySQL store is always deterministic because its
    // occupancy lives in a table.
    var store catalog.Store
    switch cfg.CatalogDriver {
    case "mysql":
        db, err := catalog.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
        if err != nil {
            log.Fatalf("open mysql catalog: %v", err)
        }
        store = catalog.NewMySQLStore(db)
    default:
        store = catalog.NewMemoryStore(catalog.MemoryConfig{
            Latency:       cfg.CatalogLatency,
            Deterministic: cfg.DeterministicOccupancy,
        })
    }

    // Redis backs identity persistence and idempotency keys.  A nil
    // client (unreachable server) falls back to in-memory stores so
    // the service still runs locally.
    rdb := config.NewRedisClient()
    var users identity.UserStore
    var keys payment.KeyStore
    if rdb != nil {
        users = identity.NewRedisUserStore(rdb)
        keys = payment.NewRedisKeyStore(rdb)
    } else {
        log.Printf("redis unavailable, using in-memory identity and idempotency stores")
        users = identity.NewMemoryUserStore()
        keys = payment.NewMemoryKeyStore()
    }

    identitySvc := identity.NewService(users, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
    ratingSvc := rating.NewService(store)
    gateway := payment.NewSimulatedGateway(store, keys, notify.RabbitPublisher{}, cfg.CatalogLatency)
    sessions := booking.NewRegistry()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(identitySvc), cfg.JWTSecret)
    router.RegisterBrowse(e, handler.NewBrowseHandler(store), handler.NewRatingHandler(ratingSvc))
    router.RegisterWorkflow(e, handler.NewWorkflowHandler(sessions, store, gateway, identitySvc), cfg.JWTSecret)

    if cfg.ConsumerEnabled {
        go func() {
            if err := queue.StartBookingConsumer(); err != nil {
                log.Printf("booking consumer stopped: %v", err)
            }
        }()
    }

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s catalog=%s)", addr, cfg.Env, cfg.CatalogDriver)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
