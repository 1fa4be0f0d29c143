package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/go-redis/redis/v8"
    "github.com/joho/godotenv"
    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/applicants"
    "github.com/zaqqye/spmb_backend/internal/config"
    "github.com/zaqqye/spmb_backend/internal/database"
    "github.com/zaqqye/spmb_backend/internal/formschema"
    "github.com/zaqqye/spmb_backend/internal/inbox"
    "github.com/zaqqye/spmb_backend/internal/kv"
    "github.com/zaqqye/spmb_backend/internal/logger"
    "github.com/zaqqye/spmb_backend/internal/routes"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()

    log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "spmb_backend")
    if err != nil {
        fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
        os.Exit(1)
    }
    defer log.Sync()

    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatal("database connection failed", zap.Error(err))
    }

    if err := database.Migrate(db); err != nil {
        log.Fatal("database migration failed", zap.Error(err))
    }

    if err := database.SeedAdmin(db, cfg, log); err != nil {
        log.Fatal("admin seed failed", zap.Error(err))
    }

    if err := database.SeedContent(db, log); err != nil {
        log.Fatal("content seed failed", zap.Error(err))
    }

    store, closeStore, err := newKVStore(cfg, db)
    if err != nil {
        log.Fatal("kv backend init failed", zap.String("backend", cfg.KVBackend), zap.Error(err))
    }
    defer closeStore()
    log.Info("kv backend ready", zap.String("backend", cfg.KVBackend))

    hub := ws.NewAdminHub(log)
    go hub.Run()
    defer hub.Stop()

    gin.SetMode(cfg.GinMode)
    r := gin.New()
    r.Use(logger.GinLogger(log), gin.Recovery())
    routes.Register(r, routes.Deps{
        DB:         db,
        Cfg:        cfg,
        Log:        log,
        Schemas:    formschema.NewStore(store, log),
        Applicants: applicants.NewStore(store, log),
        Messages:   inbox.NewStore(store, log),
        Columns:    inbox.NewColumnStore(store, log),
        Hub:        hub,
    })

    port := cfg.Port
    if port == "" {
        port = "8080"
    }
    srv := &http.Server{Addr: ":" + port, Handler: r}

    go func() {
        log.Info("server listening", zap.String("addr", srv.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            log.Fatal("server exited with error", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(ctx); err != nil {
        log.Error("graceful shutdown failed", zap.Error(err))
    }
    log.Info("server stopped")
}

// newKVStore builds the backend holding the SPMB and inbox collections.
func newKVStore(cfg *config.Config, db *gorm.DB) (kv.Store, func(), error) {
    switch cfg.KVBackend {
    case "memory":
        return kv.NewMemoryStore(), func() {}, nil
    case "redis":
        client := redis.NewClient(&redis.Options{
            Addr:     cfg.RedisAddr,
            Password: cfg.RedisPassword,
            DB:       cfg.RedisDB,
        })
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        if err := client.Ping(ctx).Err(); err != nil {
            client.Close()
            return nil, nil, fmt.Errorf("redis ping: %w", err)
        }
        return kv.NewRedisStore(client, cfg.KVPrefix), func() { client.Close() }, nil
    case "postgres", "":
        return kv.NewPostgresStore(db), func() {}, nil
    }
    return nil, nil, fmt.Errorf("unknown KV_BACKEND %q", cfg.KVBackend)
}
