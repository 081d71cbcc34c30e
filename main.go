package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dododo1295/tonotes-api/config"
	"github.com/dododo1295/tonotes-api/handler"
	"github.com/dododo1295/tonotes-api/middleware"
	"github.com/dododo1295/tonotes-api/repository"
	"github.com/dododo1295/tonotes-api/services"
	"github.com/dododo1295/tonotes-api/usecase"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// dependencies holds everything the router needs. Storage and cache are
// chosen at startup from config.
type dependencies struct {
	Users        usecase.UsersRepository
	Notes        usecase.NotesRepository
	Cache        services.NotesCache
	Tokens       *services.TokenService
	Logger       *logrus.Logger
	HealthChecks []handler.HealthCheck
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*dependencies, func(), error) {
	deps := &dependencies{
		Cache:  services.NoopNotesCache{},
		Tokens: services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration),
		Logger: logger,
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Server.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		deps.Users = repository.NewMemoryUserRepo()
		deps.Notes = repository.NewMemoryNotesRepo()
	default:
		client, err := repository.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.WithError(err).Warn("mongo disconnect failed")
			}
		})

		if err := repository.SetupIndexes(ctx, client.Database(cfg.Database.DatabaseName), cfg.Database); err != nil {
			return nil, cleanup, err
		}

		deps.Users = repository.GetUserRepo(client, cfg.Database)
		deps.Notes = repository.GetNotesRepo(client, cfg.Database)
		deps.HealthChecks = append(deps.HealthChecks, handler.HealthCheck{
			Name:  "mongo",
			Check: func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		})
		logger.WithField("database", cfg.Database.DatabaseName).Info("connected to MongoDB")
	}

	if cfg.Redis.URL != "" {
		rdb, err := services.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			// The cache is optional; run without it.
			logger.WithError(err).Warn("redis unavailable, notes cache disabled")
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			deps.Cache = services.NewRedisNotesCache(rdb, cfg.Redis.NotesTTL)
			deps.HealthChecks = append(deps.HealthChecks, handler.HealthCheck{
				Name:  "redis",
				Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			})
			logger.Info("notes cache enabled")
		}
	}

	return deps, cleanup, nil
}

func setupRouter(cfg *config.Config, deps *dependencies) *gin.Engine {
	router := gin.New()

	userService := &usecase.UserService{
		UsersRepo: deps.Users,
		Tokens:    deps.Tokens,
	}
	notesService := usecase.NewNotesService(deps.Notes, deps.Cache, deps.Logger)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))
	router.Use(middleware.RequestSizeLimiter(cfg.Server.MaxBodyBytes))

	router.GET("/", handler.IndexHandler)
	router.GET("/healthz", func(c *gin.Context) {
		handler.HealthHandler(c, deps.HealthChecks)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/create-account", func(c *gin.Context) {
		handler.CreateAccountHandler(c, userService)
	})
	router.POST("/login", func(c *gin.Context) {
		handler.LoginHandler(c, userService)
	})

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	protected.Use(middleware.NoStoreMiddleware())
	{
		protected.POST("/add-note", func(c *gin.Context) {
			handler.AddNoteHandler(c, notesService)
		})
		protected.PUT("/edit-note/:noteId", func(c *gin.Context) {
			handler.EditNoteHandler(c, notesService)
		})
		protected.GET("/get-all-notes", func(c *gin.Context) {
			handler.GetAllNotesHandler(c, notesService)
		})
		protected.DELETE("/delete-note/:noteId", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
	}

	return router
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := utils.NewLogger(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := utils.InitValidator(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.OperationTimeout*2)
	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	cancel()
	defer cleanup()
	if err != nil {
		return err
	}

	return runServer(setupRouter(cfg, deps), cfg.Server, logger)
}

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
