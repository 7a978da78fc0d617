package server

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/apperrors"
	"github.com/perchsocial/perch/internal/correlation"
)

const (
	sessionName      = "perch_session"
	sessionKeyUserID = "user_id"
)

// correlationMiddleware assigns each request a correlation ID and echoes it
// back in the response so clients can reference it in bug reports.
func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.NewID()
		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set("X-Correlation-ID", id)
		return next(c)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		slog.InfoContext(c.Request().Context(), "Request handled",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}

// requireAuth resolves the session cookie into a user ID and stores it on
// the echo context under "userID".
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return apperrors.UnauthorizedError("not logged in")
		}

		raw, ok := session.Values[sessionKeyUserID].(string)
		if !ok {
			return apperrors.UnauthorizedError("not logged in")
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.UnauthorizedError("not logged in")
		}

		c.Set("userID", userID)
		return next(c)
	}
}

// currentUserID returns the user ID placed by requireAuth.
func currentUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get("userID").(uuid.UUID)
	return userID
}
