package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/version"
)

func (s *Server) handleStartup(c echo.Context) error {
	return s.runHealthChecks(c, 2*time.Second)
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	return s.runHealthChecks(c, 5*time.Second)
}

func (s *Server) runHealthChecks(c echo.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"postgres", s.db.Ping},
		{"redis", func(ctx context.Context) error { return s.redis.Ping(ctx).Err() }},
	}

	for _, check := range checks {
		if err := check.fn(ctx); err != nil {
			return c.JSON(503, map[string]any{
				"status":       "unhealthy",
				"failed_check": check.name,
				"error":        err.Error(),
			})
		}
	}

	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
