package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-catalog-service/internal/app"
	"quiz-catalog-service/internal/config"
	"quiz-catalog-service/internal/infra/memory"
	pgstore "quiz-catalog-service/internal/infra/postgres"
	rediscache "quiz-catalog-service/internal/infra/redis"
	"quiz-catalog-service/internal/logging"
	transport "quiz-catalog-service/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz catalog server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logging.New(os.Stdout, slog.LevelInfo)

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var store app.QuizStore
	if pool != nil {
		store = pgstore.NewQuizStore(pool)
	} else {
		quizzes, questions := sampleCatalog()
		store = memory.NewQuizStore(quizzes, questions)
		log.Info("no postgres configured, serving the in-memory sample catalog")
	}

	keyTTL := config.TTLDuration(cfg.Quiz.KeyTTL, 10*time.Minute)
	loader := app.NewStoreKeyLoader(store)
	var keys app.AnswerKeyRepository
	if redisClient != nil {
		keys = rediscache.NewAnswerKeyCache(redisClient, loader, keyTTL)
	} else {
		keys = memory.NewAnswerKeyCache(loader, keyTTL)
	}

	service := app.NewQuizService(store, keys)
	handler := transport.NewHandler(service, log)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Router(cfg.Server.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting quiz catalog service", "port", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
