package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/apperrors"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.app.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	if err := s.startSession(c, user.ID.String()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.app.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	if err := s.startSession(c, user.ID.String()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleLogout(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		session, _ = s.sessionStore.New(c.Request(), sessionName)
	}
	session.Options.MaxAge = -1

	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to end session", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCurrentUser(c echo.Context) error {
	user, err := s.app.GetUserByID(c.Request().Context(), currentUserID(c))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleGetUser(c echo.Context) error {
	user, err := s.app.GetUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) startSession(c echo.Context, userID string) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		// A stale or tampered cookie decodes with an error but still yields
		// a fresh session to write into.
		session, _ = s.sessionStore.New(c.Request(), sessionName)
	}

	session.Values[sessionKeyUserID] = userID
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to start session", err)
	}
	return nil
}
