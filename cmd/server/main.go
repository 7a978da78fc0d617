package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/perchsocial/perch/internal/app"
	"github.com/perchsocial/perch/internal/config"
	"github.com/perchsocial/perch/internal/database"
	"github.com/perchsocial/perch/internal/logging"
	"github.com/perchsocial/perch/internal/redis"
	"github.com/perchsocial/perch/internal/scorecache"
	"github.com/perchsocial/perch/internal/scoring"
	"github.com/perchsocial/perch/internal/sentiment"
	"github.com/perchsocial/perch/internal/server"
	goredis "github.com/redis/go-redis/v9"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server, stopListener context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		stopListener()
		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(context.Background(), cfg)
	defer func() { _ = redisClient.Close() }()

	// Repositories
	userRepo := database.NewUserRepo(pool)
	postRepo := database.NewPostRepo(pool)
	commentRepo := database.NewCommentRepo(pool)
	reactionRepo := database.NewReactionRepo(pool)
	followRepo := database.NewFollowRepo(pool)
	scoreRepo := database.NewScoreRepo(pool)

	// Scoring pipeline: analyzer, score snapshot cache, and the rescore
	// listener that consumes pub/sub triggers.
	analyzer := sentiment.NewAnalyzer()
	cache := scorecache.New(scoreRepo, cfg.ScoreCacheTTL, clock)
	pipeline := scoring.NewPipeline(postRepo, commentRepo, reactionRepo, analyzer, scoreRepo, cache)

	listenerCtx, stopListener := context.WithCancel(context.Background())
	listener := redis.NewListener(redisClient, pipeline)
	go listener.Start(listenerCtx)

	publisher := redis.NewPublisher(redisClient)
	appSvc := app.NewService(userRepo, postRepo, commentRepo, reactionRepo, followRepo, scoreRepo, publisher, cfg.ReactionRatePerMinute)

	srv := server.NewServer(cfg, appSvc, pool, redisClient)
	done := runGracefulShutdown(srv, stopListener)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
