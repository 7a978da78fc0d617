package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/perchsocial/perch/internal/apperrors"
	"github.com/perchsocial/perch/internal/config"
	"github.com/perchsocial/perch/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// postgresPinger is the subset of pgxpool.Pool used for health checks.
type postgresPinger interface {
	Ping(ctx context.Context) error
}

// redisPinger is the subset of the Redis client used for health checks.
type redisPinger interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          domain.AppService
	sessionStore *sessions.CookieStore
	db           postgresPinger
	redis        redisPinger
	startTime    time.Time
}

func NewServer(cfg *config.Config, app domain.AppService, db postgresPinger, redis redisPinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware)
	e.Use(requestLogger)
	e.Use(apperrors.Middleware())

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		sessionStore: sessionStore,
		db:           db,
		redis:        redis,
		startTime:    time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
