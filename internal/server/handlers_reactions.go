package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/apperrors"
	"github.com/perchsocial/perch/internal/domain"
)

type reactionRequest struct {
	Type string `json:"type"`
}

func (s *Server) handleReact(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	reaction, err := s.app.React(c.Request().Context(), currentUserID(c), domain.ReactionType(req.Type), itemID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, reaction)
}

func (s *Server) handleUpdateReaction(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if err := s.app.UpdateReaction(c.Request().Context(), currentUserID(c), domain.ReactionType(req.Type), itemID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDeleteReaction(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.app.DeleteReaction(c.Request().Context(), currentUserID(c), itemID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListReactions(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reactions, err := s.app.ListReactionsByItem(c.Request().Context(), domain.ReactionType(c.QueryParam("type")), itemID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, reactions)
}
