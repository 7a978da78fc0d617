package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/perchsocial/perch/internal/apperrors"
)

type createPostRequest struct {
	Content string `json:"content"`
}

type createCommentRequest struct {
	Content string `json:"content"`
	Parent  string `json:"parent"`
}

func (s *Server) handleCreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	post, err := s.app.CreatePost(c.Request().Context(), currentUserID(c), req.Content)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (s *Server) handleListPosts(c echo.Context) error {
	posts, err := s.app.ListPosts(c.Request().Context(), c.QueryParam("author"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (s *Server) handleDeletePost(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.app.DeletePost(c.Request().Context(), currentUserID(c), postID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCreateComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	parent, err := uuid.Parse(req.Parent)
	if err != nil {
		return apperrors.ValidationError("parent must be a valid item ID")
	}

	comment, err := s.app.CreateComment(c.Request().Context(), currentUserID(c), req.Content, parent)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (s *Server) handleListComments(c echo.Context) error {
	comments, err := s.app.ListComments(c.Request().Context(), c.QueryParam("author"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (s *Server) handleListItemComments(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	comments, err := s.app.ListCommentsByParent(c.Request().Context(), itemID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (s *Server) handleDeleteComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.app.DeleteComment(c.Request().Context(), currentUserID(c), commentID); err != nil {
		return mapDomainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.ValidationError(name + " must be a valid UUID")
	}
	return id, nil
}
