package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleFollow(c echo.Context) error {
	if err := s.app.Follow(c.Request().Context(), currentUserID(c), c.Param("username")); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleUnfollow(c echo.Context) error {
	if err := s.app.Unfollow(c.Request().Context(), currentUserID(c), c.Param("username")); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListFollowers(c echo.Context) error {
	follows, err := s.app.ListFollowers(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, follows)
}

func (s *Server) handleListFollowing(c echo.Context) error {
	follows, err := s.app.ListFollowing(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, follows)
}
