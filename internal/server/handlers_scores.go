package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetScore(c echo.Context) error {
	itemID, err := parseIDParam(c, "item")
	if err != nil {
		return err
	}

	record, err := s.app.GetScore(c.Request().Context(), itemID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (s *Server) handleListScores(c echo.Context) error {
	records, err := s.app.ListScores(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, records)
}
