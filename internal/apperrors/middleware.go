package apperrors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/metrics"
)

// Middleware returns an Echo middleware that handles structured errors.
// It catches errors returned by handlers and converts them to appropriate
// HTTP responses.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// Echo HTTPErrors (from built-in middleware) pass through
			// unchanged to preserve their status code.
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				metrics.HTTPErrorsTotal.WithLabelValues(string(typeForStatus(httpErr.Code))).Inc()
				return err
			}

			structuredErr := AsStructuredError(err)
			metrics.HTTPErrorsTotal.WithLabelValues(string(structuredErr.Type)).Inc()
			logError(c, structuredErr)

			if err := c.JSON(structuredErr.HTTPStatus(), structuredErr.ToResponse()); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

func typeForStatus(code int) ErrorType {
	switch code {
	case http.StatusBadRequest:
		return TypeValidation
	case http.StatusUnauthorized:
		return TypeUnauthorized
	case http.StatusForbidden:
		return TypeForbidden
	case http.StatusNotFound:
		return TypeNotFound
	case http.StatusConflict:
		return TypeConflict
	case http.StatusTooManyRequests:
		return TypeRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return TypeExternal
	default:
		return TypeInternal
	}
}

// logError logs an error with request context.
func logError(c echo.Context, err *Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if userID := c.Get("userID"); userID != nil {
		attrs = append(attrs, "user_id", userID)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case TypeValidation, TypeNotFound, TypeUnauthorized:
		slog.InfoContext(ctx, "Request rejected", attrs...)
	case TypeConflict, TypeRateLimited:
		slog.WarnContext(ctx, "Request conflicted", attrs...)
	default:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Request failed", attrs...)
	}
}
